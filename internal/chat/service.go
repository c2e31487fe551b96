package chat

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// Fallback replies, one per failure class. The chat never fails the host
// page: every error degrades to one of these strings.
const (
	replyOffline     = "SYSTEM: I'm currently offline. (API key missing.)"
	replyBadKey      = "SYSTEM ERROR: API key is invalid. Check your settings."
	replyUnavailable = "SYSTEM ERROR: AI model unavailable in this region."
	replyRateLimited = "SYSTEM ERROR: Traffic limit reached. Try again later."
	replyGeneric     = "An error occurred while connecting to AI. Please try refreshing."
	replyEmpty       = "I didn't understand that."
)

type Service struct {
	model Model
}

func NewService(model Model) *Service {
	return &Service{model: model}
}

// Reply forwards the message to the model and converts any failure into a
// fallback string.
func (s *Service) Reply(ctx context.Context, message string) string {
	text, err := s.model.Send(ctx, message)
	if err != nil {
		slog.Warn("chat model error", "error", err)
		switch {
		case errors.Is(err, ErrNoCredential):
			return replyOffline
		case errors.Is(err, ErrBadCredential):
			return replyBadKey
		case errors.Is(err, ErrUnavailable):
			return replyUnavailable
		case errors.Is(err, ErrRateLimited):
			return replyRateLimited
		default:
			return replyGeneric
		}
	}
	if text == "" {
		return replyEmpty
	}
	return text
}
