package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/starplan/internal/catalog"
	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/matcher"
	"github.com/fadilmartias/starplan/internal/mockdata"
	"github.com/fadilmartias/starplan/internal/model"
	"github.com/fadilmartias/starplan/internal/renderer"
	"github.com/fadilmartias/starplan/internal/repository"
	"github.com/fadilmartias/starplan/internal/response"
	"github.com/fadilmartias/starplan/internal/schema"
	"github.com/fadilmartias/starplan/internal/service"
	"github.com/fadilmartias/starplan/internal/storage"
	"github.com/fadilmartias/starplan/internal/util"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

const defaultTemplateID = "professional"

// UploadInput describes a resume file already saved to disk.
type UploadInput struct {
	UserID       string
	OriginalName string
	FileName     string
	SavedPath    string
}

type ResumeDeps struct {
	Chat         service.ChatCompleter
	Embedder     service.Embedder
	Repo         repository.ResumeRepositoryInterface
	Store        storage.ObjectStore
	Renderer     renderer.PDFRenderer
	Jobs         *JobUsecase
	Matcher      *MatchUsecase
	GeneratedDir string
}

type ResumeUsecase struct {
	ResumeDeps
	now func() time.Time
}

// NewResumeUsecase wires the resume flows. Chat, Embedder and Renderer may be
// nil; Repo, Store, Jobs and Matcher are required.
func NewResumeUsecase(deps ResumeDeps) *ResumeUsecase {
	return &ResumeUsecase{ResumeDeps: deps, now: time.Now}
}

// Upload extracts, structures and stores a resume. The saved upload is
// archived to the object store and always removed afterwards; if archiving
// fails the record is stored without a file path.
func (uc *ResumeUsecase) Upload(ctx context.Context, in UploadInput) (dto.UploadResumeResponse, error) {
	defer func() {
		if err := os.Remove(in.SavedPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("[resume] error deleting upload %s: %v", in.FileName, err)
		}
	}()

	text, err := util.ExtractResumeText(in.SavedPath)
	if err != nil {
		return dto.UploadResumeResponse{}, fmt.Errorf("extract %s: %w", in.OriginalName, err)
	}

	call := util.ProviderCall[model.StructuredResume]{
		Name:    "resume-parse",
		Mock:    func() model.StructuredResume { return util.ParseResumeText(text, uc.now()) },
		Degrade: true,
	}
	if uc.Chat != nil {
		call.Live = func(ctx context.Context) (model.StructuredResume, error) {
			out, err := uc.Chat.CompleteJSON(ctx, resumeExpertPrompt, parseResumePrompt(text))
			if err != nil {
				return model.StructuredResume{}, err
			}
			return schema.Decode[model.StructuredResume](schema.StructuredResume, out)
		}
	}
	structured, err := call.Do(ctx)
	if err != nil {
		return dto.UploadResumeResponse{}, err
	}
	if structured.Experience == nil {
		structured.Experience = []model.Experience{}
	}

	doc := &model.ResumeDocument{
		ID:             uuid.New(),
		UserID:         in.UserID,
		FileName:       in.FileName,
		ExtractedText:  text,
		StructuredData: structured,
	}
	if uc.Embedder != nil {
		if vec, err := uc.Embedder.GenerateEmbedding(ctx, text); err != nil {
			log.Printf("[resume] embedding failed for %s: %v", in.FileName, err)
		} else {
			v := pgvector.NewVector(vec)
			doc.Embedding = &v
		}
	}

	key := "resumes/" + in.FileName
	if location, err := uc.Store.Put(ctx, key, in.SavedPath, contentType(in.FileName)); err != nil {
		log.Printf("[resume] archive failed for %s, storing without file: %v", in.FileName, err)
	} else {
		doc.StorageKey = key
		doc.FilePath = location
	}

	if err := uc.Repo.Create(ctx, doc); err != nil {
		return dto.UploadResumeResponse{}, fmt.Errorf("save resume: %w", err)
	}

	return dto.UploadResumeResponse{
		Message:        "Resume uploaded and parsed successfully",
		ID:             doc.ID.String(),
		FileName:       doc.FileName,
		FilePath:       doc.FilePath,
		ExtractedText:  text,
		StructuredData: structured,
		Skills:         structured.Skills,
		Experience:     structured.Experience,
	}, nil
}

// Generate writes a resume from user data, tailored to the job description
// when one is given. Format "pdf" also publishes a document under GeneratedDir.
func (uc *ResumeUsecase) Generate(ctx context.Context, req dto.GenerateResumeRequest) (dto.GenerateResumeResponse, error) {
	userData := *req.UserData
	call := util.ProviderCall[*model.GeneratedResume]{
		Name: "resume-generate",
		Mock: func() *model.GeneratedResume {
			tmpl, _ := catalog.Find(defaultTemplateID)
			return catalog.ApplyTemplate(userData, tmpl, uc.now())
		},
	}
	if uc.Chat != nil {
		call.Live = func(ctx context.Context) (*model.GeneratedResume, error) {
			payload, err := json.Marshal(userData)
			if err != nil {
				return nil, err
			}
			out, err := uc.Chat.CompleteJSON(ctx, resumeExpertPrompt, generateResumePrompt(string(payload), req.JobDescription))
			if err != nil {
				return nil, err
			}
			resume, err := schema.Decode[model.GeneratedResume](schema.GeneratedResume, out)
			if err != nil {
				return nil, err
			}
			return &resume, nil
		}
	}

	resume, err := call.Do(ctx)
	if err != nil {
		return dto.GenerateResumeResponse{}, err
	}
	if resume.GeneratedAt == "" {
		resume.GeneratedAt = uc.now().UTC().Format(time.RFC3339Nano)
	}

	res := dto.GenerateResumeResponse{Message: "Resume generated successfully", Resume: resume}
	if strings.EqualFold(req.Format, "pdf") {
		url, err := uc.publish(ctx, resume)
		if err != nil {
			return dto.GenerateResumeResponse{}, err
		}
		res.DocumentURL = url
	}
	return res, nil
}

// publish renders the resume to PDF, or to HTML when no renderer is
// configured or rendering fails, and returns its public URL.
func (uc *ResumeUsecase) publish(ctx context.Context, resume *model.GeneratedResume) (string, error) {
	if err := os.MkdirAll(uc.GeneratedDir, 0o755); err != nil {
		return "", fmt.Errorf("create generated dir: %w", err)
	}
	base := "resume-" + uuid.NewString()

	if uc.Renderer != nil {
		pdf, err := uc.Renderer.RenderPDF(ctx, resume)
		if err == nil {
			name := base + ".pdf"
			if err := os.WriteFile(filepath.Join(uc.GeneratedDir, name), pdf, 0o644); err != nil {
				return "", fmt.Errorf("write pdf: %w", err)
			}
			return "/generated/" + name, nil
		}
		log.Printf("[resume] pdf rendering failed, publishing html instead: %v", err)
	}

	html, err := renderer.RenderHTML(resume)
	if err != nil {
		return "", err
	}
	name := base + ".html"
	if err := os.WriteFile(filepath.Join(uc.GeneratedDir, name), []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write html: %w", err)
	}
	return "/generated/" + name, nil
}

func (uc *ResumeUsecase) Analyze(ctx context.Context, req dto.ResumeContentRequest) (dto.ResumeAnalysis, error) {
	content := req.Content()
	call := util.ProviderCall[dto.ResumeAnalysis]{
		Name: "resume-analyze",
		Mock: func() dto.ResumeAnalysis { return mockdata.ResumeAnalysis(content, req.JobDescription) },
	}
	if uc.Chat != nil {
		call.Live = func(ctx context.Context) (dto.ResumeAnalysis, error) {
			out, err := uc.Chat.CompleteJSON(ctx, resumeExpertPrompt, analyzeResumePrompt(content, req.JobDescription))
			if err != nil {
				return dto.ResumeAnalysis{}, err
			}
			return schema.Decode[dto.ResumeAnalysis](schema.ResumeAnalysis, out)
		}
	}
	return call.Do(ctx)
}

func (uc *ResumeUsecase) Improve(ctx context.Context, req dto.ResumeContentRequest) (dto.ResumeImprovement, error) {
	content := req.Content()
	call := util.ProviderCall[dto.ResumeImprovement]{
		Name: "resume-improve",
		Mock: func() dto.ResumeImprovement { return mockdata.ResumeImprovement(content, req.FocusAreas) },
	}
	if uc.Chat != nil {
		call.Live = func(ctx context.Context) (dto.ResumeImprovement, error) {
			out, err := uc.Chat.CompleteJSON(ctx, resumeExpertPrompt, improveResumePrompt(content, req.JobDescription, req.FocusAreas))
			if err != nil {
				return dto.ResumeImprovement{}, err
			}
			return schema.Decode[dto.ResumeImprovement](schema.ResumeImprovement, out)
		}
	}
	return call.Do(ctx)
}

// MatchJob scores a resume against one job description. The base score comes
// from the chat model, or from keyword overlap without one; with an embedder
// it is blended with the semantic similarity of the two texts.
func (uc *ResumeUsecase) MatchJob(ctx context.Context, req dto.ResumeContentRequest) (dto.ResumeJobMatch, error) {
	content := req.Content()
	call := util.ProviderCall[dto.ResumeJobMatch]{
		Name: "resume-match",
		Mock: func() dto.ResumeJobMatch {
			matched, missing, score := mockdata.KeywordMatch(content, req.JobDescription)
			recs := []string{}
			if len(missing) > 0 {
				recs = append(recs, "Highlight any experience with "+strings.Join(missing, ", "))
			}
			return dto.ResumeJobMatch{
				MatchScore:      matcher.Round(score),
				MatchedSkills:   matched,
				MissingSkills:   missing,
				Recommendations: recs,
			}
		},
	}
	if uc.Chat != nil {
		call.Live = func(ctx context.Context) (dto.ResumeJobMatch, error) {
			out, err := uc.Chat.CompleteJSON(ctx, resumeExpertPrompt, matchResumePrompt(content, req.JobDescription))
			if err != nil {
				return dto.ResumeJobMatch{}, err
			}
			return schema.Decode[dto.ResumeJobMatch](schema.ResumeMatch, out)
		}
	}

	result, err := call.Do(ctx)
	if err != nil {
		return dto.ResumeJobMatch{}, err
	}
	if uc.Embedder != nil && strings.TrimSpace(req.JobDescription) != "" {
		if semantic, err := uc.semanticScore(ctx, content, req.JobDescription); err != nil {
			log.Printf("[resume-match] semantic scoring failed, keeping base score: %v", err)
		} else {
			result.MatchScore = matcher.Round(matcher.Blend(semantic, float64(result.MatchScore)))
		}
	}
	return result, nil
}

func (uc *ResumeUsecase) semanticScore(ctx context.Context, a, b string) (float64, error) {
	va, err := uc.Embedder.GenerateEmbedding(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := uc.Embedder.GenerateEmbedding(ctx, b)
	if err != nil {
		return 0, err
	}
	return matcher.SemanticScore(va, vb)
}

func (uc *ResumeUsecase) List(ctx context.Context, userID string, page, pageSize int) ([]model.ResumeDocument, *response.Pagination, error) {
	pagination := response.NewPagination(page, pageSize, 0)
	docs, total, err := uc.Repo.List(ctx, userID, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, nil, err
	}
	return docs, response.NewPagination(pagination.Page, pagination.PageSize, total), nil
}

func (uc *ResumeUsecase) Get(ctx context.Context, id string) (*model.ResumeDocument, error) {
	return uc.Repo.FindByID(ctx, id)
}

func (uc *ResumeUsecase) Delete(ctx context.Context, id string) error {
	doc, err := uc.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if doc.StorageKey != "" {
		if err := uc.Store.Delete(ctx, doc.StorageKey); err != nil {
			log.Printf("[resume] could not delete archived file %s: %v", doc.StorageKey, err)
		}
	}
	return nil
}

// Matches ranks the current job list against a stored resume.
func (uc *ResumeUsecase) Matches(ctx context.Context, id string) ([]model.MatchResult, error) {
	doc, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	jobs, err := uc.Jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.Matcher.MatchResume(ctx, doc, jobs), nil
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
