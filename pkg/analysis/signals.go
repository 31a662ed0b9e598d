package analysis

import (
	"sort"
	"strings"
)

const (
	maxEducation  = 5
	maxHighlights = 8
)

// CountActionVerbs counts every reference verb in the text. Verbs that never
// occur are omitted; the rest are ordered by count, ties in reference order.
func CountActionVerbs(lower string) []VerbHit {
	hits := []VerbHit{}
	for _, v := range actionVerbs {
		if n := len(v.pattern.FindAllStringIndex(lower, -1)); n > 0 {
			hits = append(hits, VerbHit{Verb: v.verb, Count: n})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Count > hits[j].Count })
	return hits
}

func verbNames(hits []VerbHit) []string {
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.Verb
	}
	return out
}

// DetectSections flags every section whose header synonyms appear anywhere.
func DetectSections(lower string) SectionMap {
	var m SectionMap
	for _, p := range sectionPatterns {
		*p.pick(&m) = p.pattern.MatchString(lower)
	}
	return m
}

// FindQuantifiables returns percentages, currency amounts, durations and
// counts. Matching runs on original-case text.
func FindQuantifiables(text string) []string {
	set := newOrderedSet()
	for _, p := range quantifiablePatterns {
		for _, m := range p.FindAllString(text, -1) {
			set.add(m)
		}
	}
	return set.list()
}

// ExtractEducation finds lines naming a degree or institution, then inline
// "degree in field" phrases not already covered.
func ExtractEducation(text string) []string {
	entries := []string{}

	for _, line := range strings.Split(text, "\n") {
		lowerLine := strings.ToLower(strings.TrimSpace(line))
		if n := runeLen(lowerLine); n < 5 || n > 250 {
			continue
		}
		if !containsAny(lowerLine, degreeKeywords) && !containsAny(lowerLine, institutionKeywords) {
			continue
		}
		if hasEntry(entries, func(e string) bool { return strings.ToLower(e) == lowerLine }) {
			continue
		}
		cleaned := reLeadingBullet.ReplaceAllString(strings.TrimSpace(line), "")
		if runeLen(cleaned) > 5 {
			entries = append(entries, cleaned)
		}
	}

	for _, m := range reEducationInline.FindAllString(text, -1) {
		cleaned := strings.TrimSpace(m)
		if n := runeLen(cleaned); n <= 8 || n >= 100 {
			continue
		}
		lowerCleaned := strings.ToLower(cleaned)
		if hasEntry(entries, func(e string) bool { return strings.Contains(strings.ToLower(e), lowerCleaned) }) {
			continue
		}
		entries = append(entries, cleaned)
	}

	return capList(unique(entries), maxEducation)
}

// EducationFields reports which field-of-study keywords an entry mentions.
func EducationFields(entry string) []string {
	lower := strings.ToLower(entry)
	out := []string{}
	for _, k := range fieldKeywords {
		if strings.Contains(lower, k) {
			out = append(out, k)
		}
	}
	return out
}

// ExtractHighlights keeps sentences that carry an impact verb or a metric.
func ExtractHighlights(text string) []string {
	found := newOrderedSet()
	for _, sentence := range reSentenceBreak.Split(text, -1) {
		trimmed := strings.TrimSpace(sentence)
		if n := runeLen(trimmed); n <= 30 || n >= 300 {
			continue
		}
		for _, p := range highlightPatterns {
			if p.MatchString(trimmed) {
				found.add(trimmed)
				break
			}
		}
	}
	return capList(found.list(), maxHighlights)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func hasEntry(entries []string, match func(string) bool) bool {
	for _, e := range entries {
		if match(e) {
			return true
		}
	}
	return false
}
