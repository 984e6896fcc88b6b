package renderer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/fadilmartias/starplan/internal/model"
)

//go:embed templates/resume.html.tmpl
var templateFS embed.FS

var resumeTemplate = template.Must(
	template.New("resume.html.tmpl").
		Funcs(template.FuncMap{"join": func(items []string) string { return strings.Join(items, ", ") }}).
		ParseFS(templateFS, "templates/resume.html.tmpl"),
)

var defaultStyle = model.Template{
	Colors: model.TemplateColors{Primary: "#2c3e50", Secondary: "#34495e", Accent: "#3498db", Text: "#2c3e50", Background: "#ffffff"},
	Fonts:  model.TemplateFonts{Heading: "Arial, sans-serif", Body: "Arial, sans-serif"},
}

type PDFRenderer interface {
	RenderPDF(ctx context.Context, resume *model.GeneratedResume) ([]byte, error)
}

type view struct {
	*model.GeneratedResume
	Colors model.TemplateColors
	Fonts  model.TemplateFonts
}

// RenderHTML lays the resume out as a standalone HTML page styled by its template.
func RenderHTML(resume *model.GeneratedResume) (string, error) {
	style := defaultStyle
	if resume.Template != nil {
		style = *resume.Template
	}
	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, view{GeneratedResume: resume, Colors: style.Colors, Fonts: style.Fonts}); err != nil {
		return "", fmt.Errorf("render resume html: %w", err)
	}
	return buf.String(), nil
}

// ChromedpRenderer prints the HTML rendition to PDF with headless Chrome.
type ChromedpRenderer struct {
	ChromePath string
	Timeout    time.Duration
}

func NewChromedpRenderer(chromePath string) *ChromedpRenderer {
	return &ChromedpRenderer{ChromePath: chromePath, Timeout: 60 * time.Second}
}

func (r *ChromedpRenderer) RenderPDF(ctx context.Context, resume *model.GeneratedResume) ([]byte, error) {
	html, err := RenderHTML(resume)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, r.Timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 in inches.
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return pdfBuf, nil
}
