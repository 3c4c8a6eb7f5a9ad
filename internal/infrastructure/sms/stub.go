package sms

import (
	"context"
	"log/slog"
)

// StubGateway logs messages instead of sending them. Used in development
// and whenever no Eskiz credentials are configured.
type StubGateway struct {
	logger *slog.Logger
}

// NewStubGateway creates a logging stub.
func NewStubGateway(logger *slog.Logger) *StubGateway {
	return &StubGateway{logger: logger}
}

// Send logs the message and reports success.
func (g *StubGateway) Send(_ context.Context, phoneNumber, text string) error {
	g.logger.Info("sms stub", "to", phoneNumber, "len", len(text))
	return nil
}
