package analysis

import "math"

// Signals is the subset of extracted facts that drives scoring and feedback.
type Signals struct {
	Contact           ContactInfo
	Skills            []string
	ActionVerbs       []string
	Sections          SectionMap
	WordCount         int
	QuantifiableCount int
}

// Breakdown is the per-bucket contribution to the score.
type Breakdown struct {
	Contact          float64 `json:"contact"`
	Skills           float64 `json:"skills"`
	ActionVerbs      float64 `json:"actionVerbs"`
	RequiredSections float64 `json:"requiredSections"`
	OptionalSections float64 `json:"optionalSections"`
	Length           float64 `json:"length"`
	Quantifiables    float64 `json:"quantifiables"`
	Total            int     `json:"total"`
}

var (
	requiredSections = []string{SectionExperience, SectionEducation, SectionSkills}
	optionalSections = []string{SectionSummary, SectionProjects, SectionCertifications, SectionAwards}
)

// ScoreBreakdown computes every bucket and the clamped, rounded total.
func ScoreBreakdown(s Signals) Breakdown {
	var b Breakdown

	if len(s.Contact.Emails) > 0 {
		b.Contact += 5
	}
	if len(s.Contact.Phones) > 0 {
		b.Contact += 4
	}
	if len(s.Contact.LinkedIn) > 0 {
		b.Contact += 3
	}
	if len(s.Contact.GitHub) > 0 {
		b.Contact += 3
	}

	b.Skills = math.Min(25, float64(len(s.Skills))*2)
	b.ActionVerbs = math.Min(15, float64(len(s.ActionVerbs))*1.5)

	for _, name := range requiredSections {
		if s.Sections.Has(name) {
			b.RequiredSections += 5
		}
	}
	for _, name := range optionalSections {
		if s.Sections.Has(name) {
			b.OptionalSections += 1.25
		}
	}

	for _, threshold := range []int{200, 400, 600} {
		if s.WordCount >= threshold {
			b.Length += 5
		}
	}

	b.Quantifiables = math.Min(10, float64(s.QuantifiableCount)*2)

	sum := b.Contact + b.Skills + b.ActionVerbs + b.RequiredSections + b.OptionalSections + b.Length + b.Quantifiables
	// half-up rounding; all bucket values are non-negative
	b.Total = int(math.Min(100, math.Floor(sum+0.5)))
	return b
}

// Score returns the 0-100 resume score.
func Score(s Signals) int {
	return ScoreBreakdown(s).Total
}
