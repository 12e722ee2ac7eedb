package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"clubsite/models"
	"clubsite/monitoring"
	"clubsite/services"
	"clubsite/utils"
)

type FormHandler struct {
	notify *services.NotifyService
}

func NewFormHandler(notify *services.NotifyService) *FormHandler {
	return &FormHandler{notify: notify}
}

// SubmitContact accepts a contact form submission. Validation failures come
// back as field-level messages the form can show inline.
func (h *FormHandler) SubmitContact(c echo.Context) error {
	var msg models.ContactMessage
	if err := c.Bind(&msg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := msg.Validate(); err != nil {
		monitoring.RecordFormSubmission("contact", "invalid")
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":  "Validation failed",
			"fields": err,
		})
	}

	return h.accept(c, "contact", map[string]any{
		"name":    msg.Name,
		"email":   msg.Email,
		"subject": msg.Subject,
	})
}

// SubmitJoin accepts a membership application.
func (h *FormHandler) SubmitJoin(c echo.Context) error {
	var app models.JoinApplication
	if err := c.Bind(&app); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := app.Validate(); err != nil {
		monitoring.RecordFormSubmission("join", "invalid")
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":  "Validation failed",
			"fields": err,
		})
	}

	return h.accept(c, "join", map[string]any{
		"name":       app.Name,
		"email":      app.Email,
		"experience": app.Experience,
	})
}

func (h *FormHandler) accept(c echo.Context, form string, payload map[string]any) error {
	reference, err := utils.GenerateCode(4)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Submission failed"})
	}

	// Notification delivery must not hold up the response; the submission
	// is already accepted.
	go h.notify.FormSubmitted(form, reference, payload)

	monitoring.RecordFormSubmission(form, "accepted")
	return c.JSON(http.StatusAccepted, map[string]any{
		"id":        uuid.New().String(),
		"reference": reference,
	})
}
