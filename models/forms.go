package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ContactMessage is the payload of the contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (m ContactMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&m.Email, validation.Required, is.Email),
		validation.Field(&m.Subject, validation.Length(0, 200)),
		validation.Field(&m.Message, validation.Required, validation.Length(1, 5000)),
	)
}

// JoinApplication is the payload of the membership application form.
type JoinApplication struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Experience string `json:"experience"`
	Message    string `json:"message"`
}

func (a JoinApplication) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&a.Email, validation.Required, is.Email),
		validation.Field(&a.Experience, validation.In("", "none", "beginner", "intermediate", "experienced")),
		validation.Field(&a.Message, validation.Length(0, 5000)),
	)
}
