package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

// ContactMessage is a visitor message addressed to one candidate's page.
type ContactMessage struct {
	ID            int64     `json:"id" db:"id"`
	CandidateSlug string    `json:"candidateSlug" db:"candidate_slug"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	Subject       string    `json:"subject" db:"subject"`
	Message       string    `json:"message" db:"message"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

type SubmitRequest struct {
	SlugName string `json:"slugName"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SlugName, validation.Required.Error("slugName is required")),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Subject,
			validation.Required.Error("subject is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Message, validation.Required.Error("message is required")),
	)
}

// ListFilter narrows message queries. Empty fields match everything.
type ListFilter struct {
	Status string
	Slug   string
}
