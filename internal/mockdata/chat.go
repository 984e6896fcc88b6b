package mockdata

import "strings"

const Transcription = "This is a mock transcription of the audio file."

// ChatResponse answers by topic so the app stays usable without a chat model.
func ChatResponse(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "resume"):
		return "I can help you create a resume! Let's start by gathering some information about your work experience. What was your most recent job title?"
	case strings.Contains(lower, "cover letter"):
		return "Creating a cover letter is a great idea! Do you have a specific job description you're applying for?"
	case strings.Contains(lower, "interview"):
		return "Preparing for interviews is crucial. What role are you interviewing for?"
	default:
		return "I'm here to help with your job application needs. Would you like to create a resume, write a cover letter, or prepare for interviews?"
	}
}
