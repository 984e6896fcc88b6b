package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fadilmartias/starplan/internal/config"
	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/model"
	"github.com/go-resty/resty/v2"
)

const (
	jobsTable     = "jobs"
	profilesTable = "profiles"
)

// SupabaseService talks to the project's PostgREST endpoint.
type SupabaseService struct {
	client *resty.Client
}

func NewSupabaseService(cfg *config.SupabaseConfig) *SupabaseService {
	client := resty.New().
		SetBaseURL(cfg.RestURL()).
		SetHeader("apikey", cfg.AnonKey).
		SetAuthToken(cfg.AnonKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	return &SupabaseService{client: client}
}

func (s *SupabaseService) ListJobs(ctx context.Context) ([]model.Job, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"select": "*",
			"order":  "created_at.desc",
		}).
		Get("/" + jobsTable)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	jobs := []model.Job{}
	if err := json.Unmarshal(resp.Body(), &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return jobs, nil
}

func (s *SupabaseService) CreateJob(ctx context.Context, job model.Job) (model.Job, error) {
	payload := map[string]any{
		"title":       job.Title,
		"company":     job.Company,
		"location":    job.Location,
		"description": job.Description,
		"skills":      job.Skills,
		"salary":      job.Salary,
	}
	var created []model.Job
	if err := s.insert(ctx, jobsTable, payload, &created); err != nil {
		return model.Job{}, fmt.Errorf("create job: %w", err)
	}
	if len(created) == 0 {
		return model.Job{}, fmt.Errorf("create job: %w: no row returned", ErrProviderResponse)
	}
	return created[0], nil
}

func (s *SupabaseService) GetProfile(ctx context.Context, userID string) (model.UserProfile, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"select":  "*",
			"user_id": "eq." + userID,
			"limit":   "1",
		}).
		Get("/" + profilesTable)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return model.UserProfile{}, err
	}
	return firstProfile(resp.Body())
}

func (s *SupabaseService) UpdateProfile(ctx context.Context, userID string, update dto.ProfileUpdate) (model.UserProfile, error) {
	payload := struct {
		dto.ProfileUpdate
		UpdatedAt string `json:"updated_at"`
	}{update, time.Now().UTC().Format(time.RFC3339)}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("user_id", "eq."+userID).
		SetBody(payload).
		Patch("/" + profilesTable)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("update profile: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return model.UserProfile{}, err
	}
	return firstProfile(resp.Body())
}

func (s *SupabaseService) CreateProfile(ctx context.Context, profile model.UserProfile) (model.UserProfile, error) {
	profile.ID = ""
	profile.CreatedAt = ""
	profile.UpdatedAt = ""

	var created []model.UserProfile
	if err := s.insert(ctx, profilesTable, profile, &created); err != nil {
		return model.UserProfile{}, fmt.Errorf("create profile: %w", err)
	}
	if len(created) == 0 {
		return model.UserProfile{}, fmt.Errorf("create profile: %w: no row returned", ErrProviderResponse)
	}
	return created[0], nil
}

func (s *SupabaseService) insert(ctx context.Context, table string, row any, out any) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(row).
		Post("/" + table)
	if err != nil {
		return err
	}
	if err := checkResponse(resp); err != nil {
		return err
	}
	return json.Unmarshal(resp.Body(), out)
}

func firstProfile(body []byte) (model.UserProfile, error) {
	var profiles []model.UserProfile
	if err := json.Unmarshal(body, &profiles); err != nil {
		return model.UserProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	if len(profiles) == 0 {
		return model.UserProfile{}, ErrNotFound
	}
	return profiles[0], nil
}
