package matcher

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/fadilmartias/starplan/internal/model"
)

var ErrInvalidVector = errors.New("invalid embedding vector")

// CosineSimilarity returns dot(a,b) / (|a|·|b|).
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("%w: lengths %d and %d", ErrInvalidVector, len(a), len(b))
	}
	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("%w: zero magnitude", ErrInvalidVector)
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// SemanticScore scales cosine similarity to 0..100.
func SemanticScore(a, b []float32) (float64, error) {
	sim, err := CosineSimilarity(a, b)
	if err != nil {
		return 0, err
	}
	return sim * 100, nil
}

// ProfileText is the text embedded for a user.
func ProfileText(user UserData) string {
	exps := make([]string, 0, len(user.Experience))
	for _, e := range user.Experience {
		exps = append(exps, fmt.Sprintf("%s at %s", e.Position, e.Company))
	}
	return fmt.Sprintf("%s. Skills: %s. Experience: %s",
		user.Title, strings.Join(user.Skills, ", "), strings.Join(exps, ", "))
}

// JobText is the text embedded for a job.
func JobText(job model.Job) string {
	return fmt.Sprintf("%s. %s. Required skills: %s",
		job.Title, job.Description, strings.Join(job.Skills, ", "))
}
