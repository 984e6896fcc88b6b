package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fadilmartias/starplan/internal/model"
)

// knownSkills is the vocabulary the offline parser looks for.
var knownSkills = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Go", "Golang", "Rust", "C++", "C#", "PHP", "Ruby", "Kotlin", "Swift",
	"React", "React Native", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "Spring", "Laravel",
	"HTML", "CSS", "SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "GraphQL", "REST",
	"AWS", "GCP", "Azure", "Docker", "Kubernetes", "Terraform", "Git", "Linux", "CI/CD",
	"Machine Learning", "TensorFlow", "PyTorch", "Figma", "Photoshop", "Agile", "Scrum",
}

var (
	emailRe     = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe     = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	linkedinRe  = regexp.MustCompile(`(?i)(https?://)?(www\.)?linkedin\.com/[^\s]+`)
	yearRangeRe = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:-|–|to)\s*((?:19|20)\d{2}|present|current|now)\b`)
	educationRe = regexp.MustCompile(`(?i)\b(bachelor|master|b\.sc|m\.sc|b\.s\.|m\.s\.|phd|ph\.d|diploma|university|college|institute)\b`)
	positionSep = regexp.MustCompile(`\s+at\s+|\s*[|,@]\s*|\s+-\s+`)

	skillPatterns = compileSkillPatterns(knownSkills)
)

func compileSkillPatterns(skills []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(skills))
	for i, s := range skills {
		flags := "(?i)"
		// Short names like "Go" or "Git" would match ordinary words otherwise.
		if len(s) <= 3 {
			flags = ""
		}
		patterns[i] = regexp.MustCompile(flags + `(?:^|[^A-Za-z0-9])` + regexp.QuoteMeta(s) + `(?:[^A-Za-z0-9+#]|$)`)
	}
	return patterns
}

// DetectSkills returns the known skills mentioned in text, in vocabulary order.
func DetectSkills(text string) []string {
	found := []string{}
	for i, re := range skillPatterns {
		if re.MatchString(text) {
			found = append(found, knownSkills[i])
		}
	}
	return found
}

// ParseResumeText structures raw resume text without a language model. It
// detects contact details, known skills, education lines and any line carrying
// a year range as an experience entry.
func ParseResumeText(text string, now time.Time) model.StructuredResume {
	lines := splitLines(text)
	resume := model.StructuredResume{
		Experience: []model.Experience{},
		Education:  []model.Education{},
		Skills:     model.StringList(DetectSkills(text)),
	}

	resume.PersonalInfo.Email = emailRe.FindString(text)
	resume.PersonalInfo.Linkedin = linkedinRe.FindString(text)
	if phone := phoneRe.FindString(text); phone != "" {
		resume.PersonalInfo.Phone = strings.TrimSpace(phone)
	}
	if len(lines) > 0 && looksLikeName(lines[0]) {
		resume.PersonalInfo.Name = lines[0]
	}

	for _, line := range lines {
		if m := yearRangeRe.FindStringSubmatchIndex(line); m != nil {
			resume.Experience = append(resume.Experience, experienceFromLine(line, m, now))
			continue
		}
		if educationRe.MatchString(line) {
			resume.Education = append(resume.Education, model.Education{Institution: line})
		}
	}
	return resume
}

func experienceFromLine(line string, m []int, now time.Time) model.Experience {
	start, _ := strconv.Atoi(line[m[2]:m[3]])
	end := now.Year()
	if y, err := strconv.Atoi(line[m[4]:m[5]]); err == nil {
		end = y
	}
	years := end - start
	if years < 1 {
		years = 1
	}

	rest := strings.TrimSpace(line[:m[0]] + " " + line[m[1]:])
	rest = strings.Trim(rest, " ()-|,")
	exp := model.Experience{
		Duration:    fmt.Sprintf("%d years", years),
		Description: line,
	}
	parts := positionSep.Split(rest, 2)
	exp.Position = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		exp.Company = strings.Trim(strings.TrimSpace(parts[1]), " ()-|,")
	}
	return exp
}

func looksLikeName(line string) bool {
	if strings.ContainsAny(line, "@0123456789:/") {
		return false
	}
	words := strings.Fields(line)
	return len(words) >= 2 && len(words) <= 4
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
