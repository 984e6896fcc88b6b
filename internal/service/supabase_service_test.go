package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/starplan/internal/config"
	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/model"
	"github.com/fadilmartias/starplan/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupabase(t *testing.T, handler http.HandlerFunc) *service.SupabaseService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return service.NewSupabaseService(&config.SupabaseConfig{URL: srv.URL, AnonKey: "anon"})
}

func TestSupabase_ListJobs(t *testing.T) {
	svc := newSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/jobs", r.URL.Path)
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":7,"title":"Backend Engineer","company":"Acme","skills":["Go","SQL"],
			"created_at":"2024-05-01T10:00:00.123456+00:00"}]`))
	})

	jobs, err := svc.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, model.FlexID("7"), jobs[0].ID)
	assert.Equal(t, model.StringList{"Go", "SQL"}, jobs[0].Skills)
	require.NotNil(t, jobs[0].CreatedAt)
}

func TestSupabase_CreateJob(t *testing.T) {
	svc := newSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "id")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":12,"title":"Designer","company":"Studio"}]`))
	})

	job, err := svc.CreateJob(context.Background(), model.Job{Title: "Designer", Company: "Studio"})
	require.NoError(t, err)
	assert.Equal(t, model.FlexID("12"), job.ID)
}

func TestSupabase_GetProfile(t *testing.T) {
	svc := newSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		if r.URL.Query().Get("user_id") == "eq.u1" {
			_, _ = w.Write([]byte(`[{"id":1,"user_id":"u1","firstName":"Ada"}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})

	profile, err := svc.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)

	_, err = svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSupabase_UpdateProfile_SendsOnlyChangedFields(t *testing.T) {
	svc := newSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.u1", r.URL.Query().Get("user_id"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Staff Engineer", body["title"])
		assert.NotContains(t, body, "firstName")
		assert.Contains(t, body, "updated_at")
		_, _ = w.Write([]byte(`[{"user_id":"u1","title":"Staff Engineer"}]`))
	})

	title := "Staff Engineer"
	profile, err := svc.UpdateProfile(context.Background(), "u1", dto.ProfileUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", profile.Title)
}

func TestSupabase_ErrorStatus(t *testing.T) {
	svc := newSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid API key"}`))
	})

	_, err := svc.CreateProfile(context.Background(), model.UserProfile{UserID: "u1"})
	require.ErrorIs(t, err, service.ErrProviderResponse)
	assert.Contains(t, err.Error(), "Invalid API key")
}
