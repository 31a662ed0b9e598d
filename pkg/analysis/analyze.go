package analysis

import "strings"

const (
	previewRunes         = 2000
	maxVerbsReported     = 15
	maxQuantifiableShown = 10
)

// Analyze runs every extractor over the text and assembles the result. It is
// pure: the same input always yields the same output.
func Analyze(text string, pageCount int) Result {
	lower := strings.ToLower(text)

	contact := ExtractContact(text)
	categories := ExtractSkills(lower)
	skills := categories.All()
	verbs := verbNames(CountActionVerbs(lower))
	sections := DetectSections(lower)
	quantifiables := FindQuantifiables(text)
	education := ExtractEducation(text)
	wordCount := len(strings.Fields(text))

	signals := Signals{
		Contact:           contact,
		Skills:            skills,
		ActionVerbs:       verbs,
		Sections:          sections,
		WordCount:         wordCount,
		QuantifiableCount: len(quantifiables),
	}
	breakdown := ScoreBreakdown(signals)
	strengths, improvements := Feedback(signals)

	var name *string
	if n := ExtractName(text); n != "" {
		name = &n
	}

	return Result{
		Score:          breakdown.Total,
		ScoreBreakdown: breakdown,
		ContactInfo: ContactSummary{
			Name:     name,
			Email:    firstOrNil(contact.Emails),
			Phone:    firstOrNil(contact.Phones),
			LinkedIn: firstOrNil(contact.LinkedIn),
			GitHub:   firstOrNil(contact.GitHub),
		},
		Skills: Skills{
			Present:    skills,
			Missing:    RecommendedSkills(lower),
			Categories: categories,
		},
		Metadata: Metadata{
			PageCount:            pageCount,
			WordCount:            wordCount,
			ActionVerbCount:      len(verbs),
			QuantifiableCount:    len(quantifiables),
			SectionsFound:        sections.Found(),
			ActionVerbsFound:     capList(verbs, maxVerbsReported),
			QuantifiableExamples: capList(quantifiables, maxQuantifiableShown),
			Websites:             contact.Websites,
			EducationFields:      educationFields(education),
		},
		Education:            education,
		ExperienceHighlights: ExtractHighlights(text),
		Strengths:            strengths,
		Improvements:         improvements,
		ExtractedText:        preview(text),
		FullTextLength:       runeLen(text),
	}
}

func firstOrNil(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

func educationFields(entries []string) []string {
	set := newOrderedSet()
	for _, e := range entries {
		for _, f := range EducationFields(e) {
			set.add(f)
		}
	}
	return set.list()
}

func preview(text string) string {
	if runeLen(text) <= previewRunes {
		return text
	}
	return string([]rune(text)[:previewRunes]) + "..."
}
