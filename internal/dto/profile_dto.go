package dto

import "github.com/fadilmartias/starplan/internal/model"

// ProfileUpdate carries only the fields a client sent; nil fields are left untouched.
type ProfileUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Location  *string `json:"location,omitempty"`
	Title     *string `json:"title,omitempty"`
	Summary   *string `json:"summary,omitempty"`
	Skills    *string `json:"skills,omitempty"`
}

func (u ProfileUpdate) IsEmpty() bool {
	return u == ProfileUpdate{}
}

// Apply merges the update into p.
func (u ProfileUpdate) Apply(p *model.UserProfile) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.FirstName, u.FirstName)
	set(&p.LastName, u.LastName)
	set(&p.Email, u.Email)
	set(&p.Phone, u.Phone)
	set(&p.Location, u.Location)
	set(&p.Title, u.Title)
	set(&p.Summary, u.Summary)
	set(&p.Skills, u.Skills)
}
