package schema

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

const (
	StructuredResume  = "structured_resume"
	GeneratedResume   = "generated_resume"
	ResumeAnalysis    = "resume_analysis"
	ResumeImprovement = "resume_improvement"
	ResumeMatch       = "resume_match"
)

// ErrInvalidOutput marks model output that is not JSON or does not fit its schema.
var ErrInvalidOutput = errors.New("invalid model output")

//go:embed schemas/*.schema.json
var files embed.FS

var (
	once     sync.Once
	compiled map[string]*gojsonschema.Schema
	loadErr  error
)

func load() {
	compiled = make(map[string]*gojsonschema.Schema)
	for _, name := range []string{StructuredResume, GeneratedResume, ResumeAnalysis, ResumeImprovement, ResumeMatch} {
		raw, err := files.ReadFile("schemas/" + name + ".schema.json")
		if err != nil {
			loadErr = fmt.Errorf("read schema %s: %w", name, err)
			return
		}
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			loadErr = fmt.Errorf("compile schema %s: %w", name, err)
			return
		}
		compiled[name] = s
	}
}

// Validate checks a JSON document against the named schema.
func Validate(name string, doc []byte) error {
	once.Do(load)
	if loadErr != nil {
		return loadErr
	}
	s, ok := compiled[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	res, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s schema validation failed: %s", ErrInvalidOutput, name, strings.Join(msgs, "; "))
}

// Decode validates doc against the named schema and unmarshals it into T.
func Decode[T any](name string, doc string) (T, error) {
	var out T
	if err := Validate(name, []byte(doc)); err != nil {
		return out, err
	}
	if err := json.Unmarshal([]byte(doc), &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return out, nil
}
