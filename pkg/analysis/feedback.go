package analysis

import "fmt"

// Feedback turns signals into strengths and improvements. Every rule is
// evaluated; the thresholds are independent of the scorer's.
func Feedback(s Signals) (strengths, improvements []string) {
	strengths = []string{}
	improvements = []string{}

	if len(s.Contact.Emails) > 0 && len(s.Contact.Phones) > 0 {
		strengths = append(strengths, "Contact information is complete with email and phone")
	} else {
		improvements = append(improvements, "Add both email and phone number for easy contact")
	}

	if len(s.Contact.LinkedIn) > 0 {
		strengths = append(strengths, "LinkedIn profile included - great for networking")
	} else {
		improvements = append(improvements, "Consider adding your LinkedIn profile URL")
	}

	if len(s.Contact.GitHub) > 0 {
		strengths = append(strengths, "GitHub profile showcases your coding work")
	}

	switch n := len(s.Skills); {
	case n >= 10:
		strengths = append(strengths, fmt.Sprintf("Strong skill variety with %d skills identified", n))
	case n >= 5:
		improvements = append(improvements, "Consider adding more relevant skills to your resume")
	default:
		improvements = append(improvements, "Add more technical and soft skills to strengthen your profile")
	}

	hasExperience := s.Sections.Experience
	hasEducation := s.Sections.Education
	hasSkills := s.Sections.Skills
	if hasExperience && hasEducation && hasSkills {
		strengths = append(strengths, "Resume has all essential sections")
	} else {
		if !hasExperience {
			improvements = append(improvements, "Add a clear Experience section")
		}
		if !hasEducation {
			improvements = append(improvements, "Add an Education section")
		}
		if !hasSkills {
			improvements = append(improvements, "Add a dedicated Skills section")
		}
	}

	if !s.Sections.Summary {
		improvements = append(improvements, "Consider adding a Professional Summary at the top")
	}

	if s.Sections.Projects {
		strengths = append(strengths, "Projects section helps showcase practical experience")
	} else {
		improvements = append(improvements, "Adding a Projects section can highlight your practical work")
	}

	if s.QuantifiableCount < 3 {
		improvements = append(improvements, "Add more quantifiable achievements (numbers, percentages, metrics)")
	} else {
		strengths = append(strengths, "Good use of quantifiable metrics in achievements")
	}

	if len(s.ActionVerbs) >= 10 {
		strengths = append(strengths, "Strong use of action verbs throughout")
	} else {
		improvements = append(improvements, "Use more action verbs (achieved, developed, implemented, etc.)")
	}

	return strengths, improvements
}
