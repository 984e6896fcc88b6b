package mockdata

import (
	"fmt"
	"math"
	"strings"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/util"
)

// KeywordMatch compares the known skills mentioned in a resume and a job
// description. Score is the share of job skills found in the resume, or 50
// when the description names none.
func KeywordMatch(resume, jobDescription string) (matched, missing []string, score float64) {
	resumeSkills := make(map[string]bool)
	for _, s := range util.DetectSkills(resume) {
		resumeSkills[s] = true
	}

	matched, missing = []string{}, []string{}
	for _, s := range util.DetectSkills(jobDescription) {
		if resumeSkills[s] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	if len(matched)+len(missing) == 0 {
		return matched, missing, 50
	}
	return matched, missing, 100 * float64(len(matched)) / float64(len(matched)+len(missing))
}

func ResumeAnalysis(resume, jobDescription string) dto.ResumeAnalysis {
	skills := util.DetectSkills(resume)
	matched, missing, keywordScore := KeywordMatch(resume, jobDescription)
	if strings.TrimSpace(jobDescription) == "" {
		matched, keywordScore = skills, 70
	}

	words := len(strings.Fields(resume))
	overall := 55 + math.Min(float64(len(skills))*4, 25)
	if words >= 150 {
		overall += 10
	}

	analysis := dto.ResumeAnalysis{
		OverallScore:    int(math.Min(overall, 95)),
		ATSScore:        int(math.Round(40 + 0.55*keywordScore)),
		Strengths:       []string{},
		Weaknesses:      []string{},
		Suggestions:     []string{"Quantify achievements with numbers such as revenue, users or time saved", "Start each bullet point with a strong action verb"},
		KeywordMatches:  matched,
		MissingKeywords: missing,
	}

	if len(skills) > 0 {
		analysis.Strengths = append(analysis.Strengths, "Lists relevant skills: "+strings.Join(firstN(skills, 5), ", "))
	} else {
		analysis.Weaknesses = append(analysis.Weaknesses, "No recognizable technical skills section")
	}
	if words >= 150 {
		analysis.Strengths = append(analysis.Strengths, "Provides enough detail about past roles")
	} else {
		analysis.Weaknesses = append(analysis.Weaknesses, "Resume is short; add more detail about responsibilities and impact")
	}
	if len(missing) > 0 {
		analysis.Weaknesses = append(analysis.Weaknesses, "Missing keywords from the job description")
		analysis.Suggestions = append(analysis.Suggestions, "Mention experience with "+strings.Join(missing, ", ")+" if you have it")
	}
	return analysis
}

func ResumeImprovement(resume string, focusAreas []string) dto.ResumeImprovement {
	skills := util.DetectSkills(resume)
	summary := "Results-driven professional with a track record of delivering high-quality work and collaborating across teams."
	if len(skills) > 0 {
		summary = fmt.Sprintf("Results-driven professional skilled in %s, with a track record of delivering high-quality work and collaborating across teams.",
			strings.Join(firstN(skills, 3), ", "))
	}

	improvement := dto.ResumeImprovement{
		ImprovedSummary: summary,
		ImprovedBullets: []dto.BulletRewrite{},
		Suggestions: []string{
			"Replace duties with outcomes: say what changed because of your work",
			"Keep the resume to one or two pages",
		},
	}
	for _, line := range bulletLines(resume, 3) {
		improvement.ImprovedBullets = append(improvement.ImprovedBullets, dto.BulletRewrite{
			Original: line,
			Improved: line + ", resulting in a measurable improvement (add the number, e.g. 30% faster)",
		})
	}
	for _, area := range focusAreas {
		improvement.Suggestions = append(improvement.Suggestions, "Strengthen the "+area+" section with concrete examples")
	}
	return improvement
}

func bulletLines(text string, limit int) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "-•*"))
		if len(strings.Fields(line)) < 4 {
			continue
		}
		out = append(out, strings.TrimSuffix(line, "."))
		if len(out) == limit {
			break
		}
	}
	return out
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
