package model

import (
	"bytes"
	"encoding/json"
	"time"
)

type Job struct {
	ID          FlexID     `gorm:"type:varchar(64);primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(255)" json:"title"`
	Company     string     `gorm:"type:varchar(255)" json:"company"`
	Location    string     `gorm:"type:varchar(255)" json:"location"`
	Description string     `gorm:"type:text" json:"description"`
	Skills      StringList `gorm:"type:jsonb" json:"skills"`
	Salary      string     `gorm:"type:varchar(100)" json:"salary"`
	PostedDate  string     `gorm:"type:varchar(50)" json:"postedDate,omitempty"`
	CreatedAt   *time.Time `gorm:"index" json:"created_at,omitempty"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// MatchDetails explains the rule-based part of a match.
type MatchDetails struct {
	SkillsMatch     int      `json:"skillsMatch"`
	ExperienceMatch int      `json:"experienceMatch"`
	LocationMatch   int      `json:"locationMatch"`
	MatchedSkills   []string `json:"matchedSkills"`
}

// MatchResult is a Job scored against one user. It is computed per request and never stored.
type MatchResult struct {
	Job
	MatchScore   int          `json:"matchScore"`
	MatchDetails MatchDetails `json:"matchDetails"`
}

// FlexID accepts both string and numeric ids, since database-assigned ids come
// back as numbers while mock ids are strings.
type FlexID string

func (id *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}

type SalaryRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type Preferences struct {
	Location    string       `json:"location"`
	SalaryRange *SalaryRange `json:"salaryRange"`
}
