package handler

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fadilmartias/starplan/internal/repository"
	"github.com/fadilmartias/starplan/internal/storage"
	"github.com/fadilmartias/starplan/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	app       *fiber.App
	uploadDir string
	archive   string
}

// newTestServer wires every handler in mock mode, with in-memory repositories
// and local storage under a temp dir.
func newTestServer(t *testing.T) testServer {
	t.Helper()
	root := t.TempDir()
	srv := testServer{
		app:       fiber.New(),
		uploadDir: filepath.Join(root, "uploads"),
		archive:   filepath.Join(root, "archive"),
	}

	matcher := usecase.NewMatchUsecase(nil)
	jobs := usecase.NewJobUsecase(nil, matcher)
	resumes := usecase.NewResumeUsecase(usecase.ResumeDeps{
		Repo:         repository.NewMemoryResumeRepository(),
		Store:        storage.NewLocalStore(srv.archive, "/uploads"),
		Jobs:         jobs,
		Matcher:      matcher,
		GeneratedDir: filepath.Join(root, "generated"),
	})

	NewChatHandler(usecase.NewChatUsecase(nil, nil, repository.NewMemoryChatHistoryRepository()), srv.uploadDir, nil).RegisterRoutes(srv.app)
	NewJobHandler(jobs).RegisterRoutes(srv.app)
	NewProfileHandler(usecase.NewProfileUsecase(nil)).RegisterRoutes(srv.app)
	NewResumeHandler(resumes, srv.uploadDir, nil).RegisterRoutes(srv.app)
	NewTemplateHandler(usecase.NewTemplateUsecase()).RegisterRoutes(srv.app)
	return srv
}

func (s testServer) do(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func (s testServer) doJSON(t *testing.T, method, target, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return s.do(t, req)
}

func multipartRequest(t *testing.T, target, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.WriteField("userId", "user-1"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func docxBytes(t *testing.T, lines ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, l := range lines {
		body.WriteString("<w:p><w:r><w:t>" + l + "</w:t></w:r></w:p>")
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"word/document.xml":            "<w:document><w:body>" + body.String() + "</w:body></w:document>",
		"word/_rels/document.xml.rels": "<Relationships></Relationships>",
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var res struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &res))
	return res.Error
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return entries
}
