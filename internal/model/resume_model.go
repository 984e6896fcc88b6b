package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type Experience struct {
	Position    string `json:"position,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Year        string `json:"year,omitempty"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Linkedin string `json:"linkedin"`
	Website  string `json:"website"`
}

// StructuredResume is what the parser (AI or heuristic) pulls out of a resume.
type StructuredResume struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       StringList   `json:"skills"`
}

func (s StructuredResume) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *StructuredResume) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StructuredResume", src)
	}
}

// ResumeDocument is an uploaded resume after text extraction.
type ResumeDocument struct {
	ID             uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         string           `gorm:"type:varchar(255);index" json:"userId,omitempty"`
	FileName       string           `gorm:"type:varchar(255)" json:"fileName"`
	FilePath       string           `gorm:"type:text" json:"filePath"`
	StorageKey     string           `gorm:"type:text" json:"storageKey,omitempty"`
	ExtractedText  string           `gorm:"type:text" json:"extractedText"`
	StructuredData StructuredResume `gorm:"type:jsonb" json:"structuredData"`
	Embedding      *pgvector.Vector `gorm:"type:vector" json:"-"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (r *ResumeDocument) TableName() string {
	return "resume_documents"
}
