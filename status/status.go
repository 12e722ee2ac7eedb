package status

import "errors"

var (
	ErrEventNotFound      = errors.New("events: event not found")
	ErrContentUnavailable = errors.New("content: content source unavailable")
)
