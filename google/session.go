package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	gmail "google.golang.org/api/gmail/v1"
)

// ErrAuthUnavailable indicates no usable credential could be obtained.
// Interactive authorization is not performed here; the token file must
// already exist. Fatal to the current request, not the process.
var ErrAuthUnavailable = errors.New("google authorization unavailable")

// Scopes is the unified scope set so a single token covers both Calendar
// and Gmail.
var Scopes = []string{
	calendar.CalendarEventsScope,
	gmail.GmailModifyScope,
	gmail.GmailComposeScope,
}

// Session is the process-lifetime OAuth session shared by the Calendar and
// Gmail services. It loads the client secret and a cached token once, and
// writes refreshed tokens back to disk from a single point guarded by a
// mutex, so concurrent requests reuse one credential safely.
type Session struct {
	config    *oauth2.Config
	logger    *zap.Logger
	tokenPath string

	mu    sync.Mutex
	token *oauth2.Token
}

// NewSession builds a session from a client secret file and a cached token
// file. A missing or unreadable file yields ErrAuthUnavailable.
func NewSession(credentialsPath, tokenPath string, logger *zap.Logger) (*Session, error) {
	secret, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading client secret %s: %v", ErrAuthUnavailable, credentialsPath, err)
	}

	cfg, err := googleauth.ConfigFromJSON(secret, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing client secret: %v", ErrAuthUnavailable, err)
	}

	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading token %s: %v", ErrAuthUnavailable, tokenPath, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, fmt.Errorf("%w: parsing token %s: %v", ErrAuthUnavailable, tokenPath, err)
	}

	logger.Info("google session established",
		zap.String("component", "google-session"),
		zap.String("token_path", tokenPath),
		zap.Strings("scopes", Scopes))

	return &Session{
		config:    cfg,
		logger:    logger,
		tokenPath: tokenPath,
		token:     &token,
	}, nil
}

// Client returns an HTTP client that authorizes requests with the session
// token, refreshing and persisting it when expired.
func (s *Session) Client(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, oauth2.ReuseTokenSource(nil, &persistingTokenSource{session: s, ctx: ctx}))
}

// persistingTokenSource refreshes through the session's single lock and
// writes any new token back to disk before releasing it.
type persistingTokenSource struct {
	session *Session
	ctx     context.Context
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	s := p.session

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token.Valid() {
		return s.token, nil
	}

	fresh, err := s.config.TokenSource(p.ctx, s.token).Token()
	if err != nil {
		return nil, fmt.Errorf("%w: token refresh failed: %v", ErrAuthUnavailable, err)
	}

	s.token = fresh
	if err := s.persistLocked(fresh); err != nil {
		s.logger.Warn("failed to persist refreshed token",
			zap.String("component", "google-session"),
			zap.String("token_path", s.tokenPath),
			zap.Error(err))
	} else {
		s.logger.Debug("refreshed token persisted",
			zap.String("component", "google-session"),
			zap.String("token_path", s.tokenPath))
	}

	return fresh, nil
}

func (s *Session) persistLocked(token *oauth2.Token) error {
	raw, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	if err := os.WriteFile(s.tokenPath, raw, 0600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}
