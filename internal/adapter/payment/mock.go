package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"unipact/internal/core/port"
)

type intentStatus string

const (
	statusRequiresPayment intentStatus = "requires_payment_method"
	statusSucceeded       intentStatus = "succeeded"
	statusDeclined        intentStatus = "declined"
)

var ErrUnknownIntent = errors.New("unknown payment intent")

type intent struct {
	amount   decimal.Decimal
	currency string
	status   intentStatus
}

// MockProcessor is a stand-in payment gateway. Intents live in the instance,
// so separate processors (and separate tests) never see each other's state.
// Confirm succeeds unless the intent was declined with Decline.
type MockProcessor struct {
	mu      sync.Mutex
	intents map[string]*intent
}

func NewMockProcessor() *MockProcessor {
	return &MockProcessor{intents: make(map[string]*intent)}
}

func (p *MockProcessor) CreateIntent(_ context.Context, amount decimal.Decimal, currency string) (port.PaymentIntent, error) {
	if !amount.IsPositive() {
		return port.PaymentIntent{}, fmt.Errorf("amount must be positive, got %s", amount)
	}
	ref := "pi_mock_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	secret := ref + "_secret_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]

	p.mu.Lock()
	defer p.mu.Unlock()
	p.intents[ref] = &intent{amount: amount, currency: currency, status: statusRequiresPayment}
	return port.PaymentIntent{Ref: ref, ClientSecret: secret}, nil
}

func (p *MockProcessor) Confirm(_ context.Context, ref string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	in, ok := p.intents[ref]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownIntent, ref)
	}
	if in.status == statusDeclined {
		return false, nil
	}
	in.status = statusSucceeded
	return true, nil
}

// Decline makes the next confirmation of ref fail, like a rejected card.
func (p *MockProcessor) Decline(ref string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	in, ok := p.intents[ref]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownIntent, ref)
	}
	in.status = statusDeclined
	return nil
}
