package port

import (
	"errors"
	"fmt"

	"campaign-desk/internal/core/readiness"
)

var (
	ErrNotFound          = errors.New("campaign not found")
	ErrNotEditable       = errors.New("campaign can no longer be edited")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("invalid campaign status")
	ErrUnknownSection    = errors.New("unknown campaign section")
	ErrStatusConflict    = errors.New("campaign status changed concurrently")
)

// PublishBlockedError is returned by Publish when the publishing gate does not
// allow the campaign out of draft.
type PublishBlockedError struct {
	Check readiness.PublishingCheck
}

func (e *PublishBlockedError) Error() string {
	switch e.Check.Blocker() {
	case readiness.BlockerPaymentSetup:
		return "campaign cannot be published: payment method required"
	default:
		return fmt.Sprintf("campaign cannot be published: %d validation errors", len(e.Check.ValidationErrors))
	}
}
