package usecase

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/model"
	"github.com/fadilmartias/starplan/internal/repository"
	"github.com/fadilmartias/starplan/internal/schema"
	"github.com/fadilmartias/starplan/internal/storage"
	"github.com/fadilmartias/starplan/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeLines = "Jane Doe\njane@example.com\nSkills: Go, React, PostgreSQL\nSenior Engineer at Acme 2018 - 2024"

func writeDocx(t *testing.T, path string, lines ...string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	var body strings.Builder
	for _, l := range lines {
		body.WriteString("<w:p><w:r><w:t>" + l + "</w:t></w:r></w:p>")
	}
	zw := zip.NewWriter(f)
	files := map[string]string{
		"word/document.xml":            `<?xml version="1.0" encoding="UTF-8"?><w:document><w:body>` + body.String() + `</w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships></Relationships>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

type failingStore struct{}

func (failingStore) Put(context.Context, string, string, string) (string, error) {
	return "", errProviderDown
}

func (failingStore) Delete(context.Context, string) error { return nil }

type fakeRenderer struct {
	pdf []byte
	err error
}

func (f fakeRenderer) RenderPDF(context.Context, *model.GeneratedResume) ([]byte, error) {
	return f.pdf, f.err
}

type resumeFixture struct {
	uc       *ResumeUsecase
	repo     *repository.MemoryResumeRepository
	archive  string
	incoming string
}

func newResumeFixture(t *testing.T, mutate func(*ResumeDeps)) resumeFixture {
	t.Helper()
	root := t.TempDir()
	fx := resumeFixture{
		repo:     repository.NewMemoryResumeRepository(),
		archive:  filepath.Join(root, "archive"),
		incoming: filepath.Join(root, "incoming"),
	}
	require.NoError(t, os.MkdirAll(fx.incoming, 0o755))

	matcher := NewMatchUsecase(nil)
	deps := ResumeDeps{
		Repo:         fx.repo,
		Store:        storage.NewLocalStore(fx.archive, "/uploads"),
		Jobs:         NewJobUsecase(nil, matcher),
		Matcher:      matcher,
		GeneratedDir: filepath.Join(root, "generated"),
	}
	if mutate != nil {
		mutate(&deps)
	}
	fx.uc = NewResumeUsecase(deps)
	fx.uc.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return fx
}

func (fx resumeFixture) upload(t *testing.T, name string) (dto.UploadResumeResponse, string, error) {
	t.Helper()
	saved := filepath.Join(fx.incoming, name)
	writeDocx(t, saved, strings.Split(resumeLines, "\n")...)
	res, err := fx.uc.Upload(context.Background(), UploadInput{
		UserID:       "user-1",
		OriginalName: "cv.docx",
		FileName:     name,
		SavedPath:    saved,
	})
	return res, saved, err
}

func TestUpload_MockParsesAndArchives(t *testing.T) {
	embedder := constantEmbedder()
	fx := newResumeFixture(t, func(d *ResumeDeps) { d.Embedder = embedder })

	res, saved, err := fx.upload(t, "resume-1.docx")
	require.NoError(t, err)

	assert.Equal(t, "Resume uploaded and parsed successfully", res.Message)
	assert.Equal(t, "/uploads/resumes/resume-1.docx", res.FilePath)
	assert.Contains(t, res.ExtractedText, "Jane Doe")
	assert.Equal(t, "Jane Doe", res.StructuredData.PersonalInfo.Name)
	assert.Equal(t, "jane@example.com", res.StructuredData.PersonalInfo.Email)
	assert.Subset(t, []string(res.Skills), []string{"Go", "React", "PostgreSQL"})
	require.Len(t, res.Experience, 1)
	assert.Equal(t, "6 years", res.Experience[0].Duration)

	assert.NoFileExists(t, saved)
	assert.FileExists(t, filepath.Join(fx.archive, "resumes", "resume-1.docx"))

	doc, err := fx.repo.FindByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", doc.UserID)
	assert.Equal(t, "resumes/resume-1.docx", doc.StorageKey)
	require.NotNil(t, doc.Embedding)
	assert.Equal(t, []float32{1, 0, 0}, doc.Embedding.Slice())
}

func TestUpload_InvalidModelOutputDegradesToParser(t *testing.T) {
	chat := &fakeChat{json: `{"personalInfo": "not an object"}`}
	fx := newResumeFixture(t, func(d *ResumeDeps) { d.Chat = chat })

	res, _, err := fx.upload(t, "resume-2.docx")
	require.NoError(t, err)

	assert.Contains(t, chat.prompt, "Jane Doe")
	assert.Equal(t, "Jane Doe", res.StructuredData.PersonalInfo.Name)
}

func TestUpload_UsesModelOutput(t *testing.T) {
	chat := &fakeChat{json: `{"personalInfo":{"name":"J. Doe","email":"j@d.io","phone":"","location":"","linkedin":"","website":""},"summary":"Engineer","experience":[],"education":[],"skills":["Go"]}`}
	fx := newResumeFixture(t, func(d *ResumeDeps) { d.Chat = chat })

	res, _, err := fx.upload(t, "resume-3.docx")
	require.NoError(t, err)

	assert.Equal(t, "J. Doe", res.StructuredData.PersonalInfo.Name)
	assert.Equal(t, model.StringList{"Go"}, res.Skills)
	assert.NotNil(t, res.Experience)
}

func TestUpload_ArchiveFailureStoresWithoutFile(t *testing.T) {
	fx := newResumeFixture(t, func(d *ResumeDeps) { d.Store = failingStore{} })

	res, saved, err := fx.upload(t, "resume-4.docx")
	require.NoError(t, err)

	assert.Empty(t, res.FilePath)
	assert.NoFileExists(t, saved)

	doc, err := fx.uc.Get(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Empty(t, doc.FilePath)
	assert.Empty(t, doc.StorageKey)
	assert.Equal(t, "Jane Doe", doc.StructuredData.PersonalInfo.Name)
}

func TestUpload_UnsupportedFile(t *testing.T) {
	fx := newResumeFixture(t, nil)
	saved := filepath.Join(fx.incoming, "notes.txt")
	require.NoError(t, os.WriteFile(saved, []byte("hello"), 0o644))

	_, err := fx.uc.Upload(context.Background(), UploadInput{FileName: "notes.txt", SavedPath: saved})

	assert.ErrorIs(t, err, util.ErrUnsupportedFileType)
	assert.NoFileExists(t, saved)
}

func TestGenerate_MockUsesProfessionalTemplate(t *testing.T) {
	fx := newResumeFixture(t, nil)

	res, err := fx.uc.Generate(context.Background(), dto.GenerateResumeRequest{
		UserData: &dto.ResumeUserData{Name: "Jane Doe", Skills: model.StringList{"Go"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Resume generated successfully", res.Message)
	require.NotNil(t, res.Resume)
	assert.Equal(t, "Jane Doe", res.Resume.PersonalInfo.Name)
	require.NotNil(t, res.Resume.Template)
	assert.Equal(t, "professional", res.Resume.Template.ID)
	assert.NotEmpty(t, res.Resume.GeneratedAt)
	assert.Empty(t, res.DocumentURL)
}

func TestGenerate_PDFWithoutRendererPublishesHTML(t *testing.T) {
	fx := newResumeFixture(t, nil)

	res, err := fx.uc.Generate(context.Background(), dto.GenerateResumeRequest{
		UserData: &dto.ResumeUserData{Name: "Jane Doe"},
		Format:   "pdf",
	})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(res.DocumentURL, "/generated/"))
	assert.True(t, strings.HasSuffix(res.DocumentURL, ".html"))
	html, err := os.ReadFile(filepath.Join(fx.uc.GeneratedDir, strings.TrimPrefix(res.DocumentURL, "/generated/")))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Jane Doe")
}

func TestGenerate_PDFRenderer(t *testing.T) {
	fx := newResumeFixture(t, func(d *ResumeDeps) { d.Renderer = fakeRenderer{pdf: []byte("%PDF-1.4")} })

	res, err := fx.uc.Generate(context.Background(), dto.GenerateResumeRequest{
		UserData: &dto.ResumeUserData{Name: "Jane Doe"},
		Format:   "PDF",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(res.DocumentURL, ".pdf"))
}

func TestGenerate_RendererFailureFallsBackToHTML(t *testing.T) {
	fx := newResumeFixture(t, func(d *ResumeDeps) { d.Renderer = fakeRenderer{err: errProviderDown} })

	res, err := fx.uc.Generate(context.Background(), dto.GenerateResumeRequest{
		UserData: &dto.ResumeUserData{Name: "Jane Doe"},
		Format:   "pdf",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(res.DocumentURL, ".html"))
}

func TestGenerate_ProviderFailure(t *testing.T) {
	fx := newResumeFixture(t, func(d *ResumeDeps) { d.Chat = &fakeChat{err: errProviderDown} })

	_, err := fx.uc.Generate(context.Background(), dto.GenerateResumeRequest{UserData: &dto.ResumeUserData{}})

	assert.ErrorIs(t, err, errProviderDown)
}

func TestAnalyze(t *testing.T) {
	req := dto.ResumeContentRequest{ResumeText: "Go developer with React experience", JobDescription: "Go and Kubernetes"}

	t.Run("mock", func(t *testing.T) {
		fx := newResumeFixture(t, nil)
		res, err := fx.uc.Analyze(context.Background(), req)
		require.NoError(t, err)
		assert.Contains(t, res.KeywordMatches, "Go")
		assert.Contains(t, res.MissingKeywords, "Kubernetes")
	})

	t.Run("live", func(t *testing.T) {
		chat := &fakeChat{json: `{"overallScore":81,"atsScore":75,"strengths":["clear"],"weaknesses":[],"suggestions":["add metrics"]}`}
		fx := newResumeFixture(t, func(d *ResumeDeps) { d.Chat = chat })
		res, err := fx.uc.Analyze(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 81, res.OverallScore)
		assert.Contains(t, chat.prompt, "Go and Kubernetes")
	})

	t.Run("invalid output", func(t *testing.T) {
		chat := &fakeChat{json: `{"overallScore":"high"}`}
		fx := newResumeFixture(t, func(d *ResumeDeps) { d.Chat = chat })
		_, err := fx.uc.Analyze(context.Background(), req)
		assert.ErrorIs(t, err, schema.ErrInvalidOutput)
	})
}

func TestImprove_Mock(t *testing.T) {
	fx := newResumeFixture(t, nil)

	res, err := fx.uc.Improve(context.Background(), dto.ResumeContentRequest{
		ResumeText: "Jane Doe\nBuilt a billing service handling 1M requests a day",
		FocusAreas: []string{"impact"},
	})
	require.NoError(t, err)

	require.NotEmpty(t, res.ImprovedBullets)
	assert.Equal(t, "Built a billing service handling 1M requests a day", res.ImprovedBullets[0].Original)
}

func TestMatchJob(t *testing.T) {
	req := dto.ResumeContentRequest{ResumeText: "Go, React", JobDescription: "We need Go, React and Kubernetes"}

	t.Run("keyword overlap", func(t *testing.T) {
		fx := newResumeFixture(t, nil)
		res, err := fx.uc.MatchJob(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 67, res.MatchScore)
		assert.Equal(t, []string{"Go", "React"}, res.MatchedSkills)
		assert.Equal(t, []string{"Kubernetes"}, res.MissingSkills)
		assert.NotEmpty(t, res.Recommendations)
	})

	t.Run("semantic blend", func(t *testing.T) {
		fx := newResumeFixture(t, func(d *ResumeDeps) { d.Embedder = constantEmbedder() })
		res, err := fx.uc.MatchJob(context.Background(), req)
		require.NoError(t, err)
		// 0.6*100 + 0.4*67
		assert.Equal(t, 87, res.MatchScore)
	})

	t.Run("embedding failure keeps base score", func(t *testing.T) {
		embedder := &fakeEmbedder{fn: func(string) ([]float32, error) { return nil, errProviderDown }}
		fx := newResumeFixture(t, func(d *ResumeDeps) { d.Embedder = embedder })
		res, err := fx.uc.MatchJob(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 67, res.MatchScore)
	})

	t.Run("live base score", func(t *testing.T) {
		chat := &fakeChat{json: `{"matchScore":40,"matchedSkills":["Go"],"missingSkills":[]}`}
		fx := newResumeFixture(t, func(d *ResumeDeps) { d.Chat = chat })
		res, err := fx.uc.MatchJob(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 40, res.MatchScore)
	})
}

func TestStoredResumes_ListGetDeleteMatches(t *testing.T) {
	fx := newResumeFixture(t, nil)
	res, _, err := fx.upload(t, "resume-5.docx")
	require.NoError(t, err)
	ctx := context.Background()

	docs, page, err := fx.uc.List(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, int64(1), page.TotalItems)

	others, _, err := fx.uc.List(ctx, "someone-else", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, others)

	doc, err := fx.uc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "resume-5.docx", doc.FileName)

	matches, err := fx.uc.Matches(ctx, res.ID)
	require.NoError(t, err)
	assert.Len(t, matches, 5)

	require.NoError(t, fx.uc.Delete(ctx, res.ID))
	assert.NoFileExists(t, filepath.Join(fx.archive, "resumes", "resume-5.docx"))

	_, err = fx.uc.Get(ctx, res.ID)
	assert.ErrorIs(t, err, repository.ErrResumeNotFound)
	assert.ErrorIs(t, fx.uc.Delete(ctx, res.ID), repository.ErrResumeNotFound)
}
