package dto

import "github.com/fadilmartias/starplan/internal/model"

// MatchProfile is the part of the submitted user profile the scorer reads.
type MatchProfile struct {
	Title string `json:"title"`
}

type MatchRequest struct {
	UserProfile    *MatchProfile      `json:"userProfile"`
	UserSkills     model.StringList   `json:"userSkills"`
	UserExperience []model.Experience `json:"userExperience"`
	Preferences    model.Preferences  `json:"preferences"`
}

type CreateJobRequest struct {
	Title       string           `json:"title"`
	Company     string           `json:"company"`
	Location    string           `json:"location"`
	Description string           `json:"description"`
	Skills      model.StringList `json:"skills"`
	Salary      string           `json:"salary"`
}
