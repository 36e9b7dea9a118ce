package managers

import (
	"context"

	"jupyterclient/model"
	"jupyterclient/transport"
)

// SessionsManager works with server sessions (the binding between a
// notebook path and a kernel) through /api/sessions.
type SessionsManager struct {
	transport *transport.Transport
}

func NewSessionsManager(t *transport.Transport) *SessionsManager {
	return &SessionsManager{transport: t}
}

// ListSessions returns all active sessions.
func (m *SessionsManager) ListSessions(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	if err := m.transport.GetJSON(ctx, "/api/sessions", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetSession returns one session by id.
func (m *SessionsManager) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	var session model.Session
	if err := m.transport.GetJSON(ctx, "/api/sessions/"+sessionID, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CreateSession creates a session for path. kernelName may be empty to
// let the server pick its default kernel.
func (m *SessionsManager) CreateSession(ctx context.Context, path, sessionType, kernelName string) (*model.Session, error) {
	if sessionType == "" {
		sessionType = "notebook"
	}
	body := map[string]any{
		"path": path,
		"type": sessionType,
		"name": "",
	}
	if kernelName != "" {
		body["kernel"] = map[string]string{"name": kernelName}
	}

	var session model.Session
	if err := m.transport.PostJSON(ctx, "/api/sessions", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes a session (the server shuts its kernel down).
func (m *SessionsManager) DeleteSession(ctx context.Context, sessionID string) error {
	return m.transport.Delete(ctx, "/api/sessions/"+sessionID)
}
