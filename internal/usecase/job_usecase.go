package usecase

import (
	"context"
	"time"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/mockdata"
	"github.com/fadilmartias/starplan/internal/model"
	"github.com/fadilmartias/starplan/internal/service"
	"github.com/fadilmartias/starplan/internal/util"
	"github.com/google/uuid"
)

type JobUsecase struct {
	jobs    service.JobStore
	matches *MatchUsecase
}

// NewJobUsecase takes a nil store to serve the mock job board.
func NewJobUsecase(jobs service.JobStore, matches *MatchUsecase) *JobUsecase {
	return &JobUsecase{jobs: jobs, matches: matches}
}

func (uc *JobUsecase) List(ctx context.Context) ([]model.Job, error) {
	call := util.ProviderCall[[]model.Job]{
		Name: "jobs",
		Mock: mockdata.Jobs,
	}
	if uc.jobs != nil {
		call.Live = uc.jobs.ListJobs
	}
	return call.Do(ctx)
}

func (uc *JobUsecase) Create(ctx context.Context, req dto.CreateJobRequest) (model.Job, error) {
	job := model.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Skills:      req.Skills,
		Salary:      req.Salary,
	}
	call := util.ProviderCall[model.Job]{
		Name: "jobs",
		Mock: func() model.Job {
			now := time.Now().UTC()
			job.ID = model.FlexID(uuid.NewString())
			job.PostedDate = now.Format(time.DateOnly)
			job.CreatedAt = &now
			return job
		},
	}
	if uc.jobs != nil {
		call.Live = func(ctx context.Context) (model.Job, error) {
			return uc.jobs.CreateJob(ctx, job)
		}
	}
	return call.Do(ctx)
}

// Match ranks the current job list for the user in the request.
func (uc *JobUsecase) Match(ctx context.Context, req dto.MatchRequest) ([]model.MatchResult, error) {
	jobs, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.matches.Match(ctx, UserDataFromRequest(req), jobs), nil
}
