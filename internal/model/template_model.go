package model

type TemplateColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Background string `json:"background"`
}

type TemplateFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type TemplateLayout struct {
	Type     string   `json:"type"`
	Sections []string `json:"sections"`
}

type Template struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Preview     string         `json:"preview"`
	Colors      TemplateColors `json:"colors"`
	Fonts       TemplateFonts  `json:"fonts"`
	Layout      TemplateLayout `json:"layout"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

type PortfolioItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

type TechnicalSkills struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
	Databases  []string `json:"databases"`
}

// GeneratedResume is a resume laid out for one template. Template-specific
// sections are omitted when the template does not use them.
type GeneratedResume struct {
	PersonalInfo     PersonalInfo     `json:"personalInfo"`
	Summary          string           `json:"summary"`
	Experience       []Experience     `json:"experience"`
	Education        []Education      `json:"education"`
	Skills           []string         `json:"skills"`
	Achievements     []string         `json:"achievements"`
	ExecutiveSummary string           `json:"executiveSummary,omitempty"`
	Leadership       []string         `json:"leadership,omitempty"`
	TechnicalSkills  *TechnicalSkills `json:"technicalSkills,omitempty"`
	Projects         []Project        `json:"projects,omitempty"`
	Portfolio        []PortfolioItem  `json:"portfolio,omitempty"`
	Template         *Template        `json:"template,omitempty"`
	GeneratedAt      string           `json:"generatedAt,omitempty"`
}
