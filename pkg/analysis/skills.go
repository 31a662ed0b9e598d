package analysis

import "strings"

const maxMissingSkills = 8

// ExtractSkills scans lower-cased text against the category tables and records
// the first matched substring for every keyword that occurs.
func ExtractSkills(lower string) SkillSet {
	var set SkillSet
	for _, c := range skillCategories {
		found := newOrderedSet()
		for _, p := range c.patterns {
			if m := p.FindString(lower); m != "" {
				found.add(m)
			}
		}
		*c.pick(&set) = found.list()
	}
	return set
}

// RecommendedSkills returns popular skills not mentioned anywhere in the text,
// in reference order, at most eight.
func RecommendedSkills(lower string) []string {
	missing := []string{}
	for _, s := range popularSkills {
		if !strings.Contains(lower, strings.ToLower(s)) {
			missing = append(missing, s)
		}
	}
	return capList(missing, maxMissingSkills)
}
