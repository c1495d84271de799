package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TeamMember is one roster entry. CandidateID nil means the member
// belongs to the global (party-level) team managed by the superadmin.
type TeamMember struct {
	ID           int64  `json:"id" db:"id"`
	CandidateID  *int64 `json:"candidate_id,omitempty" db:"candidate_id"`
	Name         string `json:"name" db:"name"`
	Role         string `json:"role" db:"role"`
	PhotoURL     string `json:"photoUrl" db:"photo_url"`
	FacebookLink string `json:"facebookLink" db:"facebook_link"`
	LinkedinLink string `json:"linkedinLink" db:"linkedin_link"`
}

type MemberRequest struct {
	Name         string `form:"name" json:"name"`
	Role         string `form:"role" json:"role"`
	FacebookLink string `form:"facebookLink" json:"facebookLink"`
	LinkedinLink string `form:"linkedinLink" json:"linkedinLink"`
}

func (r MemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Role, validation.Length(0, 255)),
	)
}
