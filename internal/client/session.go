package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"kirana-connect/internal/dto/response"

	"go.uber.org/zap"
)

// State is the session lifecycle: Unauthenticated -> Authenticating ->
// Authenticated, with failures falling back to Unauthenticated.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
)

// Session is the client-side authentication context. It keeps the signed
// token in a local file so a restart can resume the session, and verifies
// the token against the backend before trusting it.
type Session struct {
	mu    sync.Mutex
	state State
	user  *response.UserResponse
	token string

	baseURL   string
	tokenPath string
	client    *http.Client
	log       *zap.Logger
}

// envelope mirrors the backend's response wrapper
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func NewSession(baseURL, tokenPath string, log *zap.Logger) *Session {
	return &Session{
		state:     StateUnauthenticated,
		baseURL:   baseURL,
		tokenPath: tokenPath,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       log,
	}
}

// Restore resumes a persisted session. Any failure, a missing token file, a
// stale token, an unreachable backend, silently clears the session instead of
// surfacing an error.
func (s *Session) Restore(ctx context.Context) {
	token, err := os.ReadFile(s.tokenPath)
	if err != nil || len(token) == 0 {
		s.reset()
		return
	}

	s.setState(StateAuthenticating)

	user, err := s.fetchMe(ctx, string(token))
	if err != nil {
		s.log.Warn("Session restore failed, clearing token", zap.Error(err))
		s.clearToken()
		s.reset()
		return
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.token = string(token)
	s.user = user
	s.mu.Unlock()

	s.log.Info("Session restored", zap.String("user_id", user.ID))
}

// Login authenticates against the backend. Unlike Restore, failures propagate
// to the caller for display.
func (s *Session) Login(ctx context.Context, email, password string) error {
	return s.authenticate(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Register creates an account and enters the authenticated state directly
func (s *Session) Register(ctx context.Context, name, email, password, role string) error {
	return s.authenticate(ctx, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	})
}

// Logout drops the session synchronously, no backend round-trip needed for a
// stateless token
func (s *Session) Logout() {
	s.clearToken()
	s.reset()
	s.log.Info("Session cleared")
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the authenticated account, nil otherwise
func (s *Session) User() *response.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

func (s *Session) authenticate(ctx context.Context, path string, payload map[string]string) error {
	s.setState(StateAuthenticating)

	body, err := json.Marshal(payload)
	if err != nil {
		s.reset()
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		s.reset()
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.reset()
		return fmt.Errorf("reach backend: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		s.reset()
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Status {
		s.reset()
		return fmt.Errorf("%s", env.Message)
	}

	var auth response.AuthResponse
	if err := json.Unmarshal(env.Data, &auth); err != nil {
		s.reset()
		return fmt.Errorf("decode session: %w", err)
	}

	if err := s.persistToken(auth.Token); err != nil {
		s.log.Warn("Failed to persist token, session will not survive restart", zap.Error(err))
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.token = auth.Token
	user := auth.User
	s.user = &user
	s.mu.Unlock()

	s.log.Info("Session established", zap.String("user_id", auth.User.ID))
	return nil
}

func (s *Session) fetchMe(ctx context.Context, token string) (*response.UserResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/auth/me", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reach backend: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !env.Status {
		return nil, fmt.Errorf("%s", env.Message)
	}

	var user response.UserResponse
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

func (s *Session) persistToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.tokenPath, []byte(token), 0o600)
}

func (s *Session) clearToken() {
	if err := os.Remove(s.tokenPath); err != nil && !os.IsNotExist(err) {
		s.log.Warn("Failed to remove token file", zap.Error(err))
	}
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateUnauthenticated
	s.token = ""
	s.user = nil
}
