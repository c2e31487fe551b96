package checkout

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/jvdzdigital/storefront/internal/cart"
	"github.com/jvdzdigital/storefront/internal/promo"
)

// State of the submission pipeline.
type State string

const (
	StateIdle       State = "idle"
	StateEncoding   State = "encoding"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var (
	// ErrValidation blocks the attempt before any network call.
	ErrValidation = errors.New("incomplete order form")
	// ErrEncoding means the proof attachment could not be processed.
	ErrEncoding = errors.New("could not process image")
	// ErrInFlight rejects a second submission while one is running.
	ErrInFlight = errors.New("a submission is already in progress")
)

// Submitter is satisfied by *Client; tests substitute a recorder.
type Submitter interface {
	Submit(ctx context.Context, payload orderPayload) error
}

// Session receives the outcome of a confirmed order (the app controller).
type Session interface {
	OrderSucceeded(r Receipt)
}

// Service drives the Idle -> Encoding -> Submitting -> Succeeded/Failed
// pipeline. Failures leave the cart and form intact so the user can correct
// and resubmit; only a confirmed success clears the ledger.
type Service struct {
	ledger    *cart.Ledger
	evaluator *promo.Evaluator
	client    Submitter
	session   Session

	mu       sync.Mutex
	state    State
	inFlight bool
}

func NewService(ledger *cart.Ledger, evaluator *promo.Evaluator, client Submitter, session Session) *Service {
	return &Service{
		ledger:    ledger,
		evaluator: evaluator,
		client:    client,
		session:   session,
		state:     StateIdle,
	}
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Service) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Submit runs one checkout attempt to completion. There is no cancellation:
// an in-flight request runs until it succeeds or fails.
func (s *Service) Submit(ctx context.Context, form OrderForm) (Receipt, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return Receipt{}, ErrInFlight
	}
	s.inFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if err := validate(form); err != nil {
		s.setState(StateIdle)
		return Receipt{}, err
	}

	s.setState(StateEncoding)
	fileData, err := encodeProof(form.Proof)
	if err != nil {
		s.setState(StateFailed)
		return Receipt{}, errors.Mark(err, ErrEncoding)
	}

	lines := s.ledger.Lines()
	itemsJSON, err := json.Marshal(lines)
	if err != nil {
		s.setState(StateFailed)
		return Receipt{}, errors.Wrap(err, "snapshot cart")
	}

	total := s.ledger.Total()
	if result := s.evaluator.Evaluate(form.PromoCode); result.Status == promo.StatusApplied {
		total -= result.Discount
		if total < 0 {
			total = 0
		}
	}

	payload := orderPayload{
		CustomerName:  form.CustomerName,
		Phone:         form.Phone,
		Email:         form.Email,
		PaymentMethod: form.PaymentMethod,
		ItemsJSON:     string(itemsJSON),
		TotalAmount:   total,
		FileData:      fileData,
		MIMEType:      form.Proof.mimeType(),
		FileName:      form.Proof.fileName(),
	}

	s.setState(StateSubmitting)
	if err := s.client.Submit(ctx, payload); err != nil {
		s.setState(StateFailed)
		slog.Error("order submission failed", "error", err)
		return Receipt{}, err
	}

	receipt := Receipt{
		Reference: uuid.NewString(),
		Email:     form.Email,
		Total:     total,
	}
	s.ledger.Clear()
	if s.session != nil {
		s.session.OrderSucceeded(receipt)
	}
	s.setState(StateSucceeded)
	slog.Info("order submitted", "reference", receipt.Reference, "items", len(lines), "total", total)
	return receipt, nil
}

func validate(form OrderForm) error {
	switch {
	case form.CustomerName == "":
		return errors.Mark(errors.New("customer name is required"), ErrValidation)
	case form.Phone == "":
		return errors.Mark(errors.New("phone is required"), ErrValidation)
	case form.Email == "":
		return errors.Mark(errors.New("email is required"), ErrValidation)
	case form.Proof.Empty():
		return errors.Mark(errors.New("proof of payment is required"), ErrValidation)
	case !ValidPaymentMethod(form.PaymentMethod):
		return errors.Mark(errors.New("unknown payment method"), ErrValidation)
	}
	return nil
}
