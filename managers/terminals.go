package managers

import (
	"context"

	"jupyterclient/model"
	"jupyterclient/transport"
)

// TerminalsManager works with server terminals through /api/terminals.
type TerminalsManager struct {
	transport *transport.Transport
}

func NewTerminalsManager(t *transport.Transport) *TerminalsManager {
	return &TerminalsManager{transport: t}
}

// ListTerminals returns all running terminals.
func (m *TerminalsManager) ListTerminals(ctx context.Context) ([]model.Terminal, error) {
	var terminals []model.Terminal
	if err := m.transport.GetJSON(ctx, "/api/terminals", &terminals); err != nil {
		return nil, err
	}
	return terminals, nil
}

// CreateTerminal starts a new terminal.
func (m *TerminalsManager) CreateTerminal(ctx context.Context) (*model.Terminal, error) {
	var terminal model.Terminal
	if err := m.transport.PostJSON(ctx, "/api/terminals", nil, &terminal); err != nil {
		return nil, err
	}
	return &terminal, nil
}

// DeleteTerminal stops the named terminal.
func (m *TerminalsManager) DeleteTerminal(ctx context.Context, name string) error {
	return m.transport.Delete(ctx, "/api/terminals/"+name)
}
