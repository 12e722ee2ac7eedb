package services

import (
	"log"

	pubnub "github.com/pubnub/go"
)

// Channel form submission notifications are published on.
const formChannel = "club-forms"

// NotifyService pushes realtime notifications to the club's admin dashboard
// when a visitor submits a form. A nil PubNub client disables publishing;
// submissions are still accepted.
type NotifyService struct {
	pubnub *pubnub.PubNub
}

func NewNotifyService(pn *pubnub.PubNub) *NotifyService {
	return &NotifyService{pubnub: pn}
}

func (s *NotifyService) FormSubmitted(form, reference string, payload map[string]any) {
	if s.pubnub == nil {
		log.Printf("Form %s submitted (ref %s), notifications disabled", form, reference)
		return
	}

	message := map[string]any{
		"type":      "form_submission",
		"form":      form,
		"reference": reference,
		"payload":   payload,
	}

	_, _, err := s.pubnub.Publish().
		Channel(formChannel).
		Message(message).
		Execute()
	if err != nil {
		log.Printf("Failed to publish %s notification: %v", form, err)
	}
}
