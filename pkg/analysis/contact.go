package analysis

import (
	"strings"
)

const maxWebsites = 3

// ExtractContact collects emails, phones, profile links and websites.
func ExtractContact(text string) ContactInfo {
	info := ContactInfo{
		Emails:   unique(reEmail.FindAllString(text, -1)),
		Phones:   unique(rePhone.FindAllString(text, -1)),
		LinkedIn: unique(reLinkedIn.FindAllString(text, -1)),
		GitHub:   unique(reGitHub.FindAllString(text, -1)),
	}

	sites := newOrderedSet()
	for _, w := range reWebsite.FindAllString(text, -1) {
		if isClassifiedContact(w, info.Emails) {
			continue
		}
		sites.add(w)
	}
	info.Websites = capList(sites.list(), maxWebsites)
	return info
}

// isClassifiedContact drops website hits that are really an email domain or a
// LinkedIn/GitHub profile.
func isClassifiedContact(hit string, emails []string) bool {
	lower := strings.ToLower(hit)
	if strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") || strings.Contains(hit, "@") {
		return true
	}
	if !strings.Contains(hit, ".") {
		return true
	}
	for _, e := range emails {
		if strings.Contains(e, hit) {
			return true
		}
	}
	return false
}

// ExtractName guesses the candidate name from the first five lines. It returns
// "" when no line looks like a name.
func ExtractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if n := runeLen(trimmed); n <= 3 || n >= 50 {
			continue
		}
		words := strings.Fields(trimmed)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if strings.Contains(trimmed, "@") {
			continue
		}
		if allNameWords(words) {
			return trimmed
		}
	}
	return ""
}

func allNameWords(words []string) bool {
	for _, w := range words {
		if !reNameWord.MatchString(w) {
			return false
		}
	}
	return true
}
