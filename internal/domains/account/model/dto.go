package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

type RegisterRequest struct {
	FullNameEn     string `json:"fullNameEn"`
	FullNameBn     string `json:"fullNameBn"`
	Division       string `json:"division"`
	District       string `json:"district"`
	ConstituencyNo int    `json:"constituencyNo"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullNameEn, validation.Required.Error("full name is required")),
		validation.Field(&r.Division, validation.Required.Error("division is required")),
		validation.Field(&r.District, validation.Required.Error("district is required")),
		validation.Field(&r.ConstituencyNo,
			validation.Required.Error("constituency number is required"),
			validation.Min(1).Error("constituency number must be positive"),
		),
		validation.Field(&r.Email, is.Email.Error("email must be valid")),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
	)
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required.Error("current password is required")),
		validation.Field(&r.NewPassword,
			validation.Required.Error("new password is required"),
			validation.Length(8, 128).Error("new password must be 8-128 characters"),
		),
	)
}
