package repository

import (
	"context"
	"time"

	"github.com/fadilmartias/starplan/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobRepository stores jobs in Postgres. It serves the job list when Supabase
// is not configured but a database is.
type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) ListJobs(ctx context.Context) ([]model.Job, error) {
	jobs := []model.Job{}
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) CreateJob(ctx context.Context, job model.Job) (model.Job, error) {
	if job.ID == "" {
		job.ID = model.FlexID(uuid.NewString())
	}
	if job.CreatedAt == nil {
		now := time.Now().UTC()
		job.CreatedAt = &now
	}
	err := r.db.WithContext(ctx).Create(&job).Error
	return job, err
}
