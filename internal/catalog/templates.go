package catalog

import (
	"github.com/fadilmartias/starplan/internal/model"
)

var templates = []model.Template{
	{
		ID:          "professional",
		Name:        "Professional",
		Description: "Clean and professional layout perfect for corporate positions",
		Category:    "business",
		Preview:     "/templates/professional-preview.png",
		Colors:      model.TemplateColors{Primary: "#2c3e50", Secondary: "#34495e", Accent: "#3498db", Text: "#2c3e50", Background: "#ffffff"},
		Fonts:       model.TemplateFonts{Heading: "Arial, sans-serif", Body: "Arial, sans-serif"},
		Layout:      model.TemplateLayout{Type: "single-column", Sections: []string{"header", "summary", "experience", "education", "skills"}},
	},
	{
		ID:          "modern",
		Name:        "Modern",
		Description: "Contemporary design with clean lines and modern typography",
		Category:    "creative",
		Preview:     "/templates/modern-preview.png",
		Colors:      model.TemplateColors{Primary: "#1a1a1a", Secondary: "#666666", Accent: "#ff6b6b", Text: "#333333", Background: "#ffffff"},
		Fonts:       model.TemplateFonts{Heading: "Helvetica, sans-serif", Body: "Helvetica, sans-serif"},
		Layout:      model.TemplateLayout{Type: "two-column", Sections: []string{"header", "summary", "experience", "skills", "education"}},
	},
	{
		ID:          "creative",
		Name:        "Creative",
		Description: "Bold and creative design for artistic and design positions",
		Category:    "creative",
		Preview:     "/templates/creative-preview.png",
		Colors:      model.TemplateColors{Primary: "#8e44ad", Secondary: "#9b59b6", Accent: "#e74c3c", Text: "#2c3e50", Background: "#ffffff"},
		Fonts:       model.TemplateFonts{Heading: "Georgia, serif", Body: "Open Sans, sans-serif"},
		Layout:      model.TemplateLayout{Type: "creative-grid", Sections: []string{"header", "summary", "skills", "experience", "education", "portfolio"}},
	},
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Simple and clean design focusing on content",
		Category:    "simple",
		Preview:     "/templates/minimal-preview.png",
		Colors:      model.TemplateColors{Primary: "#000000", Secondary: "#666666", Accent: "#000000", Text: "#333333", Background: "#ffffff"},
		Fonts:       model.TemplateFonts{Heading: "Times New Roman, serif", Body: "Times New Roman, serif"},
		Layout:      model.TemplateLayout{Type: "single-column", Sections: []string{"header", "experience", "education", "skills"}},
	},
	{
		ID:          "executive",
		Name:        "Executive",
		Description: "Sophisticated design for senior-level positions",
		Category:    "business",
		Preview:     "/templates/executive-preview.png",
		Colors:      model.TemplateColors{Primary: "#1e3a8a", Secondary: "#3b82f6", Accent: "#fbbf24", Text: "#1f2937", Background: "#ffffff"},
		Fonts:       model.TemplateFonts{Heading: "Garamond, serif", Body: "Garamond, serif"},
		Layout:      model.TemplateLayout{Type: "executive-style", Sections: []string{"header", "executive-summary", "leadership", "experience", "education", "achievements"}},
	},
	{
		ID:          "tech",
		Name:        "Tech",
		Description: "Modern design optimized for technology professionals",
		Category:    "technology",
		Preview:     "/templates/tech-preview.png",
		Colors:      model.TemplateColors{Primary: "#0f172a", Secondary: "#475569", Accent: "#06b6d4", Text: "#334155", Background: "#ffffff"},
		Fonts:       model.TemplateFonts{Heading: "Roboto, sans-serif", Body: "Roboto, sans-serif"},
		Layout:      model.TemplateLayout{Type: "tech-grid", Sections: []string{"header", "summary", "technical-skills", "experience", "projects", "education"}},
	},
}

// Templates returns a copy of the catalog in display order.
func Templates() []model.Template {
	out := make([]model.Template, len(templates))
	for i, t := range templates {
		t.Layout.Sections = append([]string(nil), t.Layout.Sections...)
		out[i] = t
	}
	return out
}

// Find looks a template up by id.
func Find(id string) (model.Template, bool) {
	for _, t := range Templates() {
		if t.ID == id {
			return t, true
		}
	}
	return model.Template{}, false
}
