package catalog

import (
	"time"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/model"
)

// ApplyTemplate lays user data out for a template. Missing fields get sample
// content so the preview never renders empty.
func ApplyTemplate(data dto.ResumeUserData, tmpl model.Template, now time.Time) *model.GeneratedResume {
	resume := &model.GeneratedResume{
		PersonalInfo: model.PersonalInfo{
			Name:     orDefault(data.Name, "John Doe"),
			Email:    orDefault(data.Email, "john.doe@email.com"),
			Phone:    orDefault(data.Phone, "+1 (555) 123-4567"),
			Location: orDefault(data.Location, "City, State"),
			Linkedin: data.Linkedin,
			Website:  data.Website,
		},
		Summary: orDefault(data.Summary, "Experienced professional with strong background in technology and innovation."),
		Experience: listOr(data.Experience, []model.Experience{{
			Company:     "Tech Company",
			Position:    "Software Developer",
			Duration:    "2020-2023",
			Description: "Developed and maintained web applications using modern technologies.",
		}}),
		Education: listOr(data.Education, []model.Education{{
			Institution: "University",
			Degree:      "Bachelor of Science",
			Field:       "Computer Science",
			Year:        "2020",
		}}),
		Skills:       listOr([]string(data.Skills), []string{"JavaScript", "React", "Node.js"}),
		Achievements: listOr(data.Achievements, []string{"Increased team productivity by 25%", "Led successful project delivery"}),
	}

	switch tmpl.ID {
	case "executive":
		resume.ExecutiveSummary = orDefault(data.ExecutiveSummary, resume.Summary)
		resume.Leadership = listOr(data.Leadership, []string{"Led cross-functional teams", "Managed strategic initiatives"})
	case "tech":
		resume.TechnicalSkills = &model.TechnicalSkills{
			Languages:  listOr(data.Languages, []string{"JavaScript", "Python", "Java"}),
			Frameworks: listOr(data.Frameworks, []string{"React", "Node.js", "Express"}),
			Tools:      listOr(data.Tools, []string{"Git", "Docker", "AWS"}),
			Databases:  listOr(data.Databases, []string{"MongoDB", "PostgreSQL"}),
		}
		resume.Projects = listOr(data.Projects, []model.Project{{
			Name:         "Sample Project",
			Description:  "Built a full-stack web application",
			Technologies: []string{"React", "Node.js", "MongoDB"},
			Link:         "https://github.com/username/project",
		}})
	case "creative":
		resume.Portfolio = listOr(data.Portfolio, []model.PortfolioItem{{
			Title:       "Creative Project",
			Description: "Innovative design solution",
			Link:        "https://portfolio.com/project",
		}})
	}

	t := tmpl
	resume.Template = &t
	resume.GeneratedAt = now.UTC().Format(time.RFC3339Nano)
	return resume
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func listOr[T any](v, def []T) []T {
	if len(v) == 0 {
		return def
	}
	return v
}
