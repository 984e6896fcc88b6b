package dto

import (
	"encoding/json"
	"strings"

	"github.com/fadilmartias/starplan/internal/model"
)

// ResumeUserData is the free-form profile a client sends to generate a resume.
type ResumeUserData struct {
	Name             string                `json:"name"`
	Email            string                `json:"email"`
	Phone            string                `json:"phone"`
	Location         string                `json:"location"`
	Linkedin         string                `json:"linkedin"`
	Website          string                `json:"website"`
	Title            string                `json:"title"`
	Summary          string                `json:"summary"`
	Experience       []model.Experience    `json:"experience"`
	Education        []model.Education     `json:"education"`
	Skills           model.StringList      `json:"skills"`
	Achievements     []string              `json:"achievements"`
	ExecutiveSummary string                `json:"executiveSummary"`
	Leadership       []string              `json:"leadership"`
	Languages        []string              `json:"languages"`
	Frameworks       []string              `json:"frameworks"`
	Tools            []string              `json:"tools"`
	Databases        []string              `json:"databases"`
	Projects         []model.Project       `json:"projects"`
	Portfolio        []model.PortfolioItem `json:"portfolio"`
}

type GenerateResumeRequest struct {
	UserData       *ResumeUserData `json:"userData"`
	JobDescription string          `json:"jobDescription"`
	Format         string          `json:"format"`
}

type GenerateResumeResponse struct {
	Message     string                 `json:"message"`
	Resume      *model.GeneratedResume `json:"resume"`
	DocumentURL string                 `json:"documentUrl,omitempty"`
}

type TemplateGenerateRequest struct {
	UserData *ResumeUserData `json:"userData"`
}

type TemplateGenerateResponse struct {
	Message  string                 `json:"message"`
	Template model.Template         `json:"template"`
	Resume   *model.GeneratedResume `json:"resume"`
}

// ResumeContentRequest is shared by analyze, improve and match. Either the raw
// text or the structured data must be present.
type ResumeContentRequest struct {
	ResumeText     string          `json:"resumeText"`
	ResumeData     json.RawMessage `json:"resumeData"`
	JobDescription string          `json:"jobDescription"`
	FocusAreas     []string        `json:"focusAreas"`
}

// Content returns the resume as text, preferring the raw text.
func (r ResumeContentRequest) Content() string {
	if s := strings.TrimSpace(r.ResumeText); s != "" {
		return s
	}
	raw := strings.TrimSpace(string(r.ResumeData))
	if raw == "" || raw == "null" || raw == "{}" {
		return ""
	}
	return raw
}

type UploadResumeResponse struct {
	Message        string                 `json:"message"`
	ID             string                 `json:"id"`
	FileName       string                 `json:"fileName"`
	FilePath       string                 `json:"filePath"`
	ExtractedText  string                 `json:"extractedText"`
	StructuredData model.StructuredResume `json:"structuredData"`
	Skills         model.StringList       `json:"skills"`
	Experience     []model.Experience     `json:"experience"`
}

type ResumeAnalysis struct {
	OverallScore    int      `json:"overallScore"`
	ATSScore        int      `json:"atsScore"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Suggestions     []string `json:"suggestions"`
	KeywordMatches  []string `json:"keywordMatches"`
	MissingKeywords []string `json:"missingKeywords"`
}

type BulletRewrite struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
}

type ResumeImprovement struct {
	ImprovedSummary string          `json:"improvedSummary"`
	ImprovedBullets []BulletRewrite `json:"improvedBullets"`
	Suggestions     []string        `json:"suggestions"`
}

type ResumeJobMatch struct {
	MatchScore      int      `json:"matchScore"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Recommendations []string `json:"recommendations"`
}
