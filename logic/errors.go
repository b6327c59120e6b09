package logic

import (
	"errors"
	"fmt"
)

var (
	ErrPostNotFound         = errors.New("post not found")
	ErrPostNotEditable      = errors.New("post has no content to edit")
	ErrNotPublishable       = errors.New("post cannot be published")
	ErrPublishInFlight      = errors.New("post is already being published")
	ErrQuotaExhausted       = errors.New("daily post limit reached")
	ErrNotScanned           = errors.New("no scan results to generate from")
	ErrNoActivitiesSelected = errors.New("none of the selected activities are available")
	ErrUnknownStyle         = errors.New("unknown post style")
	ErrNoImageTarget        = errors.New("no post is open for image selection")
	ErrStaleResponse        = errors.New("response superseded by a newer request")
	ErrInvalidUrn           = errors.New("LinkedIn URN must not be empty")
	ErrPostChanged          = errors.New("post changed while the request was out")
	ErrScheduleInPast       = errors.New("scheduled time must be in the future")
	ErrScheduleQuotaFull    = errors.New("scheduled post limit reached")
)

type BackendErrorKind string

const (
	// Request could not complete: network failure or non-2xx status.
	ErrKindTransport BackendErrorKind = "transport"
	// Backend answered 2xx with an error in the envelope.
	ErrKindApplication BackendErrorKind = "application"
)

type BackendError struct {
	Kind    BackendErrorKind
	Op      string
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// UserMessage returns the text to show to users: the backend's own words when there are any.
func UserMessage(err error) string {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Message
	}
	return err.Error()
}

func IsBackendKind(err error, kind BackendErrorKind) bool {
	var be *BackendError
	return errors.As(err, &be) && be.Kind == kind
}
