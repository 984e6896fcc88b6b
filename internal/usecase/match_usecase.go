package usecase

import (
	"context"
	"log"
	"sort"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/matcher"
	"github.com/fadilmartias/starplan/internal/model"
	"github.com/fadilmartias/starplan/internal/service"
	"github.com/fadilmartias/starplan/internal/util"
	"golang.org/x/sync/errgroup"
)

// embeddingConcurrency bounds the job embedding calls in flight per request.
const embeddingConcurrency = 4

type MatchUsecase struct {
	embedder service.Embedder
}

// NewMatchUsecase takes a nil embedder to score with rules only.
func NewMatchUsecase(embedder service.Embedder) *MatchUsecase {
	return &MatchUsecase{embedder: embedder}
}

// UserDataFromRequest maps the match request body onto the scorer's input.
func UserDataFromRequest(req dto.MatchRequest) matcher.UserData {
	user := matcher.UserData{
		Skills:      []string(req.UserSkills),
		Experience:  req.UserExperience,
		Preferences: req.Preferences,
	}
	if req.UserProfile != nil {
		user.Title = req.UserProfile.Title
	}
	return user
}

// UserDataFromResume builds scorer input out of a parsed resume. Skills fall
// back to keyword detection over the raw text when the parser found none.
func UserDataFromResume(doc *model.ResumeDocument) matcher.UserData {
	user := matcher.UserData{
		Skills:     []string(doc.StructuredData.Skills),
		Experience: doc.StructuredData.Experience,
	}
	if len(user.Skills) == 0 {
		user.Skills = util.DetectSkills(doc.ExtractedText)
	}
	if len(doc.StructuredData.Experience) > 0 {
		user.Title = doc.StructuredData.Experience[0].Position
	}
	return user
}

// Match scores every job for the user, best match first. With an embedder the
// score blends semantic similarity with the rule-based score; any embedding
// failure degrades to the rule-based score, for one job or for all of them.
func (uc *MatchUsecase) Match(ctx context.Context, user matcher.UserData, jobs []model.Job) []model.MatchResult {
	results := make([]model.MatchResult, len(jobs))
	ruleTotals := make([]float64, len(jobs))
	for i, job := range jobs {
		breakdown := matcher.RuleBased(job, user)
		ruleTotals[i] = breakdown.Total
		results[i] = model.MatchResult{
			Job:          job,
			MatchScore:   matcher.Round(breakdown.Total),
			MatchDetails: matcher.Details(job, user),
		}
	}

	if uc.embedder != nil && len(jobs) > 0 {
		uc.blendSemantic(ctx, user, jobs, ruleTotals, results)
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].MatchScore > results[b].MatchScore
	})
	return results
}

func (uc *MatchUsecase) blendSemantic(ctx context.Context, user matcher.UserData, jobs []model.Job, ruleTotals []float64, results []model.MatchResult) {
	profileVec, err := uc.embedder.GenerateEmbedding(ctx, matcher.ProfileText(user))
	if err != nil {
		log.Printf("[match] profile embedding failed, falling back to rule-based matching: %v", err)
		return
	}

	var g errgroup.Group
	g.SetLimit(embeddingConcurrency)
	for i, job := range jobs {
		g.Go(func() error {
			jobVec, err := uc.embedder.GenerateEmbedding(ctx, matcher.JobText(job))
			if err != nil {
				log.Printf("[match] embedding for job %s failed, using rule-based score: %v", job.ID, err)
				return nil
			}
			semantic, err := matcher.SemanticScore(profileVec, jobVec)
			if err != nil {
				log.Printf("[match] similarity for job %s failed, using rule-based score: %v", job.ID, err)
				return nil
			}
			results[i].MatchScore = matcher.Round(matcher.Blend(semantic, ruleTotals[i]))
			return nil
		})
	}
	_ = g.Wait()
}

// MatchResume ranks jobs for a stored resume.
func (uc *MatchUsecase) MatchResume(ctx context.Context, doc *model.ResumeDocument, jobs []model.Job) []model.MatchResult {
	return uc.Match(ctx, UserDataFromResume(doc), jobs)
}
