package usecase

import (
	"errors"
	"time"

	"github.com/fadilmartias/starplan/internal/catalog"
	"github.com/fadilmartias/starplan/internal/dto"
	"github.com/fadilmartias/starplan/internal/model"
)

var ErrTemplateNotFound = errors.New("template not found")

type TemplateUsecase struct {
	now func() time.Time
}

func NewTemplateUsecase() *TemplateUsecase {
	return &TemplateUsecase{now: time.Now}
}

func (uc *TemplateUsecase) List() []model.Template {
	return catalog.Templates()
}

func (uc *TemplateUsecase) Get(id string) (model.Template, error) {
	tmpl, ok := catalog.Find(id)
	if !ok {
		return model.Template{}, ErrTemplateNotFound
	}
	return tmpl, nil
}

// Generate fills the template with the user's data. No provider is involved.
func (uc *TemplateUsecase) Generate(id string, data dto.ResumeUserData) (dto.TemplateGenerateResponse, error) {
	tmpl, err := uc.Get(id)
	if err != nil {
		return dto.TemplateGenerateResponse{}, err
	}
	return dto.TemplateGenerateResponse{
		Message:  "Resume generated successfully",
		Template: tmpl,
		Resume:   catalog.ApplyTemplate(data, tmpl, uc.now()),
	}, nil
}
