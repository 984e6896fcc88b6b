package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/mockdata"
	"github.com/fadilmartias/starplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frontendRequest() dto.MatchRequest {
	return dto.MatchRequest{
		UserProfile: &dto.MatchProfile{Title: "Frontend Developer"},
		UserSkills:  model.StringList{"React Native", "JavaScript", "CSS", "UI/UX"},
		UserExperience: []model.Experience{
			{Position: "Frontend Developer", Company: "Acme", Duration: "4 years"},
			{Position: "Junior Developer", Company: "Start", Duration: "2 years"},
		},
		Preferences: model.Preferences{Location: "San Francisco"},
	}
}

func TestMatch_RuleBasedRanksBestJobFirst(t *testing.T) {
	uc := NewMatchUsecase(nil)

	results := uc.Match(context.Background(), UserDataFromRequest(frontendRequest()), mockdata.Jobs())

	require.Len(t, results, 5)
	assert.Equal(t, model.FlexID("1"), results[0].ID)
	assert.GreaterOrEqual(t, results[0].MatchScore, 80)
	assert.Equal(t, 100, results[0].MatchDetails.SkillsMatch)
	assert.Equal(t, 90, results[0].MatchDetails.ExperienceMatch)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].MatchScore, results[i].MatchScore)
	}
}

func TestMatch_BlendsSemanticScore(t *testing.T) {
	embedder := &fakeEmbedder{fn: func(text string) ([]float32, error) {
		if containsFold(text, "Frontend") {
			return []float32{1, 0}, nil
		}
		return []float32{0, 1}, nil
	}}
	uc := NewMatchUsecase(embedder)

	results := uc.Match(context.Background(), UserDataFromRequest(frontendRequest()), mockdata.Jobs())

	require.Len(t, results, 5)
	assert.Equal(t, model.FlexID("1"), results[0].ID)
	// 0.6*100 + 0.4*94.25
	assert.Equal(t, 98, results[0].MatchScore)
	assert.Equal(t, 6, embedder.calls)
}

func TestMatch_JobEmbeddingFailureKeepsRuleScore(t *testing.T) {
	embedder := &fakeEmbedder{fn: func(text string) ([]float32, error) {
		if containsFold(text, "Required skills") {
			return nil, errProviderDown
		}
		return []float32{1, 0}, nil
	}}
	user := UserDataFromRequest(frontendRequest())

	blended := NewMatchUsecase(embedder).Match(context.Background(), user, mockdata.Jobs())
	rules := NewMatchUsecase(nil).Match(context.Background(), user, mockdata.Jobs())

	assert.Equal(t, rules, blended)
}

func TestMatch_InvalidVectorFallsBack(t *testing.T) {
	embedder := &fakeEmbedder{fn: func(text string) ([]float32, error) {
		if containsFold(text, "Required skills") {
			return []float32{1, 0, 0}, nil
		}
		return []float32{1, 0}, nil
	}}
	user := UserDataFromRequest(frontendRequest())

	blended := NewMatchUsecase(embedder).Match(context.Background(), user, mockdata.Jobs())
	rules := NewMatchUsecase(nil).Match(context.Background(), user, mockdata.Jobs())

	assert.Equal(t, rules, blended)
}

func TestMatch_ProfileEmbeddingFailureSkipsJobs(t *testing.T) {
	embedder := &fakeEmbedder{fn: func(string) ([]float32, error) { return nil, errProviderDown }}

	results := NewMatchUsecase(embedder).Match(context.Background(), UserDataFromRequest(frontendRequest()), mockdata.Jobs())

	assert.Len(t, results, 5)
	assert.Equal(t, 1, embedder.calls)
}

func TestMatch_EmptyJobList(t *testing.T) {
	results := NewMatchUsecase(constantEmbedder()).Match(context.Background(), UserDataFromRequest(frontendRequest()), nil)
	assert.Empty(t, results)
}

func TestUserDataFromResume_DetectsSkillsFromText(t *testing.T) {
	doc := &model.ResumeDocument{
		ExtractedText: "Worked with Docker and Kubernetes every day.",
		StructuredData: model.StructuredResume{
			Experience: []model.Experience{{Position: "DevOps Engineer", Duration: "3 years"}},
		},
	}

	user := UserDataFromResume(doc)

	assert.Equal(t, []string{"Docker", "Kubernetes"}, user.Skills)
	assert.Equal(t, "DevOps Engineer", user.Title)
}
