package nlp

import (
	"math"
	"strings"
)

// MatchScore rates how well a user's skills cover a job's skills on a 40-99
// scale. Either list being empty yields the neutral 50. A user skill counts as
// matched when it contains, or is contained in, any job skill.
func MatchScore(jobSkills, userSkills []string) int {
	if len(jobSkills) == 0 || len(userSkills) == 0 {
		return 50
	}
	jobLower := lowerAll(jobSkills)

	matches := 0
	for _, u := range lowerAll(userSkills) {
		for _, j := range jobLower {
			if strings.Contains(j, u) || strings.Contains(u, j) {
				matches++
				break
			}
		}
	}

	ratio := float64(matches) / float64(max(len(jobSkills), len(userSkills)))
	score := int(math.Floor(50 + ratio*50 + 0.5))
	return min(99, max(40, score))
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
