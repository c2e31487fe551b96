package chat

import (
	"context"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"
)

// GeminiModel talks to the Gemini API through one lazily created chat
// session. The session object carries the running conversation context.
type GeminiModel struct {
	apiKey string
	model  string

	mu      sync.Mutex
	session *genai.Chat
}

func NewGeminiModel(apiKey, model string) *GeminiModel {
	return &GeminiModel{apiKey: apiKey, model: model}
}

func (g *GeminiModel) ensureSession(ctx context.Context) (*genai.Chat, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.session != nil {
		return g.session, nil
	}
	if g.apiKey == "" {
		return nil, ErrNoCredential
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, classify(err)
	}

	session, err := client.Chats.Create(ctx, g.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, classify(err)
	}
	g.session = session
	return session, nil
}

func (g *GeminiModel) Send(ctx context.Context, message string) (string, error) {
	session, err := g.ensureSession(ctx)
	if err != nil {
		return "", err
	}
	res, err := session.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", classify(err)
	}
	return res.Text(), nil
}

// classify maps API failures onto the chat error classes. The status code is
// preferred; the string match covers errors the SDK does not type.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return errors.Mark(err, ErrBadCredential)
		case 404:
			return errors.Mark(err, ErrUnavailable)
		case 429:
			return errors.Mark(err, ErrRateLimited)
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "key"):
		return errors.Mark(err, ErrBadCredential)
	case strings.Contains(msg, "404") || strings.Contains(msg, "not found"):
		return errors.Mark(err, ErrUnavailable)
	case strings.Contains(msg, "429"):
		return errors.Mark(err, ErrRateLimited)
	}
	return err
}
