package coach

import (
	"fmt"
	"strings"
)

const coverLetterSystem = `You are a professional career coach and expert copywriter.
Write a compelling, professional cover letter based on the following information.

Instructions:
- Format as a standard business letter.
- Highlight matching skills from the resume relevant to the job role.
- Keep it concise (under 400 words).
- Do not use placeholders like [Insert Name] unless absolutely necessary (try to use the resume name if found, otherwise keep generic sign-off).
- Output in Markdown.`

const interviewPrepSystem = `You are a senior hiring manager and interviewer.
Generate an Interview Preparation Guide for the given job role.

Instructions:
- Provide 3 likely technical questions specific to the role.
- Provide 3 behavioral questions relevant to typical responsibilities.
- List key soft skills to demonstrate.
- Give one "Star" tip to stand out for this specific position.
- Output in Markdown.`

const refineSystem = `You are an expert ATS (Applicant Tracking System) Resume Writer & Career Coach.
Your goal is to rewrite the user's resume to be highly optimized for ATS software while maintaining readability for human recruiters.

Guidelines:
1. **Structure**: Use a clean, standard layout structure (Header, Summary, Experience, Skills, Education).
2. **Keywords**: Naturally integrate the missing skills and keywords relevant to the target role.
3. **Action Verbs**: Start bullet points with strong power verbs (e.g., "Orchestrated", "Engineered", "Reduced").
4. **Metrics**: Emphasize quantifiable achievements (numbers, %, $) where possible. If exact numbers are missing in the source, phrase it to highlight impact (e.g. "Resulting in significant efficiency gains").
5. **Clarity**: Remove buzzwords, fluff, and subjective statements (e.g., "Hard worker").
6. **Formatting**: Output in clean Markdown format that serves as a text-based resume.

Input provided will include:
- Current Resume Text
- Analysis of missing skills
- Target Job Role (optional)

Output Format:
Return ONLY the rewritten styled resume in Markdown.
Do not include conversational filler like "Here is your resume".
`

func coverLetterPrompt(r Request) string {
	extra := r.Context
	if strings.TrimSpace(extra) == "" {
		extra = "Professional and enthusiastic"
	}
	return fmt.Sprintf(`TARGET JOB ROLE: %[1]s

CANDIDATE'S RESUME / BACKGROUND:
%[2]s

ADDITIONAL CONTEXT (Tone, Focus, etc.):
%[3]s

Please write a cover letter for this candidate applying to the %[1]s position.`, r.JobRole, r.ResumeText, extra)
}

func interviewPrepPrompt(r Request) string {
	return fmt.Sprintf(`Generate an Interview Preparation Guide for the role of: %[1]s

Please provide:
1. **3 Likely Technical Questions** specific to a %[1]s.
2. **3 Behavioral Questions** relevant to this role's typical responsibilities.
3. **Key Soft Skills** to demonstrate for a %[1]s.
4. **One "Star" Tip** to stand out for this specific position.`, r.JobRole)
}

func refinePrompt(r RefineRequest) string {
	role := r.TargetRole
	if strings.TrimSpace(role) == "" {
		role = "General Role based on experience"
	}
	missing := strings.Join(r.Missing, ", ")
	if missing == "" {
		missing = "None detected"
	}
	improvements := strings.Join(r.Improvements, "\n- ")
	if improvements == "" {
		improvements = "None detected"
	}
	return fmt.Sprintf(`
Target Role: %s

Context from automated analysis:
- Identified Missing Skills to Integrate: %s
- Key Improvements Needed:
- %s

Original Resume Text:
"""
%s
"""

Instructions:
Rewrite this resume to be ATS-friendly.
- Improve the Professional Summary to be catchy and relevant.
- Rewrite bullet points to be impact-driven.
- Ensure the "Skills" section is comprehensive and includes the missing skills if they fit the candidate's background context.
- Fix any grammar or clarity issues.
`, role, missing, improvements, r.ResumeText)
}
