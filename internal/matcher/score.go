// Package matcher scores jobs against a user. Everything here is pure and
// deterministic; the semantic part only combines vectors computed elsewhere.
package matcher

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/fadilmartias/starplan/internal/model"
)

const (
	weightSkills     = 0.40
	weightExperience = 0.25
	weightLocation   = 0.15
	weightSalary     = 0.10
	weightTitle      = 0.10

	weightSemantic = 0.6
	weightRule     = 0.4
)

var (
	digitsRe      = regexp.MustCompile(`\d+`)
	titleKeywords = []string{"developer", "engineer", "designer", "manager", "analyst", "specialist"}
)

// UserData is everything about the user the scorer looks at.
type UserData struct {
	Title       string
	Skills      []string
	Experience  []model.Experience
	Preferences model.Preferences
}

type Breakdown struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Location   float64 `json:"location"`
	Salary     float64 `json:"salary"`
	Title      float64 `json:"title"`
	Total      float64 `json:"total"`
}

// RuleBased computes the weighted rule score, capped at 100.
func RuleBased(job model.Job, user UserData) Breakdown {
	b := Breakdown{
		Skills:     SkillsScore(job.Skills, user.Skills),
		Experience: ExperienceScore(user.Experience),
		Location:   LocationScore(job.Location, user.Preferences.Location),
		Salary:     SalaryScore(job.Salary, user.Preferences.SalaryRange),
		Title:      TitleScore(job.Title, user.Title),
	}
	total := b.Skills*weightSkills +
		b.Experience*weightExperience +
		b.Location*weightLocation +
		b.Salary*weightSalary +
		b.Title*weightTitle
	b.Total = math.Min(total, 100)
	return b
}

// SkillsScore is the percentage of job skills covered by some user skill,
// where covered means either string contains the other, ignoring case.
func SkillsScore(jobSkills, userSkills []string) float64 {
	if len(jobSkills) == 0 || len(userSkills) == 0 {
		return 50
	}
	return float64(len(MatchedSkills(jobSkills, userSkills))) / float64(len(jobSkills)) * 100
}

// MatchedSkills returns the job skills covered by the user's skills, in job order.
func MatchedSkills(jobSkills, userSkills []string) []string {
	matched := make([]string, 0, len(jobSkills))
	for _, js := range jobSkills {
		jl := strings.ToLower(js)
		for _, us := range userSkills {
			ul := strings.ToLower(us)
			if strings.Contains(ul, jl) || strings.Contains(jl, ul) {
				matched = append(matched, js)
				break
			}
		}
	}
	return matched
}

// ExperienceScore bands the total years of experience.
func ExperienceScore(experience []model.Experience) float64 {
	if len(experience) == 0 {
		return 30
	}
	years := TotalYears(experience)
	switch {
	case years >= 5:
		return 90
	case years >= 3:
		return 80
	case years >= 1:
		return 70
	default:
		return 50
	}
}

// TotalYears sums the first integer of every duration. Entries without a
// readable duration count as one year.
func TotalYears(experience []model.Experience) float64 {
	var total float64
	for _, exp := range experience {
		m := digitsRe.FindString(exp.Duration)
		if m == "" {
			total++
			continue
		}
		n, ok := parseDigits(m)
		if !ok {
			total++
			continue
		}
		total += n
	}
	return total
}

// parseDigits reads a digit group as a float. Groups too long to represent
// come back as +Inf rather than being dropped.
func parseDigits(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

func LocationScore(jobLocation, preferred string) float64 {
	if preferred == "" {
		return 75
	}
	if jobLocation == "" {
		return 50
	}
	jobLoc := strings.ToLower(jobLocation)
	prefLoc := strings.ToLower(preferred)

	if strings.Contains(jobLoc, "remote") || strings.Contains(prefLoc, "remote") {
		return 100
	}
	if strings.Contains(jobLoc, prefLoc) || strings.Contains(prefLoc, jobLoc) {
		return 95
	}

	prefParts := splitTrim(prefLoc)
	for _, part := range splitTrim(jobLoc) {
		for _, p := range prefParts {
			if part == p {
				return 70
			}
		}
	}
	return 30
}

// SalaryScore compares the job's salary text against the preferred range.
// Every digit group in the text is read as thousands.
func SalaryScore(jobSalary string, rng *model.SalaryRange) float64 {
	if rng == nil || jobSalary == "" {
		return 75
	}
	groups := digitsRe.FindAllString(jobSalary, -1)
	if len(groups) == 0 {
		return 75
	}

	jobMin, jobMax := math.Inf(1), math.Inf(-1)
	for _, g := range groups {
		n, ok := parseDigits(g)
		if !ok {
			continue
		}
		jobMin = math.Min(jobMin, n)
		jobMax = math.Max(jobMax, n)
	}
	jobMin *= 1000
	jobMax *= 1000
	jobAvg := (jobMin + jobMax) / 2

	prefMin, prefMax := 0.0, math.Inf(1)
	if rng.Min != nil {
		prefMin = *rng.Min
	}
	if rng.Max != nil {
		prefMax = *rng.Max
	}

	if jobAvg >= prefMin && jobAvg <= prefMax {
		return 100
	}
	if jobMin <= prefMax && jobMax >= prefMin {
		return 80
	}
	return 40
}

func TitleScore(jobTitle, userTitle string) float64 {
	if jobTitle == "" || userTitle == "" {
		return 50
	}
	jt := strings.ToLower(jobTitle)
	ut := strings.ToLower(userTitle)

	if jt == ut {
		return 100
	}
	if strings.Contains(jt, ut) || strings.Contains(ut, jt) {
		return 85
	}
	for _, kw := range titleKeywords {
		if strings.Contains(jt, kw) && strings.Contains(ut, kw) {
			return 70
		}
	}
	return 30
}

// Details reports the rounded sub-scores the client shows next to a match.
func Details(job model.Job, user UserData) model.MatchDetails {
	return model.MatchDetails{
		SkillsMatch:     Round(SkillsScore(job.Skills, user.Skills)),
		ExperienceMatch: Round(ExperienceScore(user.Experience)),
		LocationMatch:   Round(LocationScore(job.Location, user.Preferences.Location)),
		MatchedSkills:   MatchedSkills(job.Skills, user.Skills),
	}
}

// Blend combines a semantic score and a rule score, both on 0..100.
func Blend(semantic, rule float64) float64 {
	return Clamp(semantic*weightSemantic + rule*weightRule)
}

func Clamp(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(0, math.Min(score, 100))
}

// Round rounds half up, so 72.5 becomes 73.
func Round(score float64) int {
	return int(math.Floor(score + 0.5))
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
