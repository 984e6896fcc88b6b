package usecase

import (
	"fmt"
	"strings"
)

const resumeExpertPrompt = "You are an expert resume writer and career coach. Always answer with a single JSON object and nothing else."

func parseResumePrompt(text string) string {
	return fmt.Sprintf(`Extract the structured data from this resume.

Return JSON with this shape:
{
  "personalInfo": {"name": "", "email": "", "phone": "", "location": "", "linkedin": "", "website": ""},
  "summary": "",
  "experience": [{"position": "", "company": "", "duration": "", "description": ""}],
  "education": [{"institution": "", "degree": "", "field": "", "year": ""}],
  "skills": [""]
}
Write durations as a number of years, for example "3 years".

Resume:
%s`, text)
}

func generateResumePrompt(userData, jobDescription string) string {
	target := "No specific job description was given; write a strong general resume."
	if strings.TrimSpace(jobDescription) != "" {
		target = "Tailor the resume to this job description:\n" + jobDescription
	}
	return fmt.Sprintf(`Create a professional resume from the user data below.
%s

Return JSON with this shape:
{
  "personalInfo": {"name": "", "email": "", "phone": "", "location": "", "linkedin": "", "website": ""},
  "summary": "",
  "experience": [{"position": "", "company": "", "duration": "", "description": ""}],
  "education": [{"institution": "", "degree": "", "field": "", "year": ""}],
  "skills": [""],
  "achievements": [""]
}

User data:
%s`, target, userData)
}

func analyzeResumePrompt(resume, jobDescription string) string {
	return fmt.Sprintf(`Analyze this resume%s.

Return JSON with this shape:
{
  "overallScore": <integer 0-100>,
  "atsScore": <integer 0-100, how well an applicant tracking system would parse and rank it>,
  "strengths": [""],
  "weaknesses": [""],
  "suggestions": [""],
  "keywordMatches": [""],
  "missingKeywords": [""]
}

Resume:
%s`, forJob(jobDescription), resume)
}

func improveResumePrompt(resume, jobDescription string, focusAreas []string) string {
	focus := ""
	if len(focusAreas) > 0 {
		focus = "\nFocus on: " + strings.Join(focusAreas, ", ") + "."
	}
	return fmt.Sprintf(`Improve this resume%s.%s
Rewrite the summary and the weakest bullet points with stronger action verbs and measurable impact.

Return JSON with this shape:
{
  "improvedSummary": "",
  "improvedBullets": [{"original": "", "improved": ""}],
  "suggestions": [""]
}

Resume:
%s`, forJob(jobDescription), focus, resume)
}

func matchResumePrompt(resume, jobDescription string) string {
	return fmt.Sprintf(`Compare this resume with the job description.

Return JSON with this shape:
{
  "matchScore": <integer 0-100>,
  "matchedSkills": [""],
  "missingSkills": [""],
  "recommendations": [""]
}

Job description:
%s

Resume:
%s`, jobDescription, resume)
}

func forJob(jobDescription string) string {
	if strings.TrimSpace(jobDescription) == "" {
		return ""
	}
	return " against this job description:\n" + jobDescription + "\n"
}
