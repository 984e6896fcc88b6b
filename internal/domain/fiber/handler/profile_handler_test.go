package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fadilmartias/starplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRoutes(t *testing.T) {
	srv := newTestServer(t)

	code, body := srv.doJSON(t, http.MethodGet, "/api/profile/u1", "")
	require.Equal(t, http.StatusOK, code)
	var profile model.UserProfile
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, "u1", profile.UserID)

	code, body = srv.doJSON(t, http.MethodPut, "/api/profile/u1", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Profile data is required", errorMessage(t, body))

	code, body = srv.doJSON(t, http.MethodPut, "/api/profile/u1", `{"title":"Staff Engineer"}`)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, "Staff Engineer", profile.Title)

	code, body = srv.doJSON(t, http.MethodPost, "/api/profile", `{"firstName":"Ada"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Profile data with user_id is required", errorMessage(t, body))

	code, body = srv.doJSON(t, http.MethodPost, "/api/profile", `{"user_id":"u2","firstName":"Ada"}`)
	require.Equal(t, http.StatusCreated, code)
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, "u2", profile.UserID)
	assert.NotEmpty(t, profile.ID)
}
