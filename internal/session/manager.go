// Package session owns the authenticated user's identity and Basic
// credential. The browser-side durable storage is a signed cookie holding
// exactly two keys: the raw Authorization header value and the serialized
// user record. Restoring a session never touches the backend; a stale
// credential is only discovered on the next real API call.
package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/fernandarrocha/AV2-faculdade/internal/models"
	"github.com/fernandarrocha/AV2-faculdade/pkg/config"
)

const (
	credentialsKey = "authCredentials"
	userKey        = "authUser"

	flashSuccessKey = "_flash_success"
	flashErrorKey   = "_flash_error"
)

// Prober validates a credential with one read-only backend request.
type Prober interface {
	Ping(ctx context.Context, auth string) error
}

// Manager persists and restores the user session across requests.
type Manager struct {
	store  *sessions.CookieStore
	name   string
	probe  Prober
	logger *zap.Logger
}

// NewManager builds a Manager over a cookie store keyed by cfg.Secret.
func NewManager(cfg config.SessionConfig, probe Prober, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, name: cfg.Name, probe: probe, logger: logger}
}

// Login builds the Basic credential for the pair, validates it with one
// probe against the protected student collection and, on success, persists
// both session keys. Any probe failure, transport errors included, leaves
// the prior session untouched and returns false.
func (m *Manager) Login(ctx context.Context, r *http.Request, w http.ResponseWriter, username, password string) bool {
	auth := "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))

	if err := m.probe.Ping(ctx, auth); err != nil {
		m.logger.Warn("login rejected", zap.String("username", username), zap.Error(err))
		return false
	}

	// Placeholder authorization policy: the backend enforces no roles
	// visible to this layer, so the role set is derived from the username.
	roles := []string{models.RoleUser}
	if username == "admin" {
		roles = []string{models.RoleAdmin, models.RoleUser}
	}

	record, err := json.Marshal(models.User{Username: username, Roles: roles})
	if err != nil {
		m.logger.Error("failed to serialize user record", zap.Error(err))
		return false
	}

	sess, _ := m.store.Get(r, m.name)
	sess.Values[credentialsKey] = auth
	sess.Values[userKey] = string(record)
	if err := sess.Save(r, w); err != nil {
		m.logger.Error("failed to persist session", zap.Error(err))
		return false
	}
	return true
}

// Logout removes both session keys. Calling it when already signed out is
// a no-op.
func (m *Manager) Logout(r *http.Request, w http.ResponseWriter) {
	sess, _ := m.store.Get(r, m.name)
	delete(sess.Values, credentialsKey)
	delete(sess.Values, userKey)
	if err := sess.Save(r, w); err != nil {
		m.logger.Error("failed to clear session", zap.Error(err))
	}
}

// Current restores the session from the cookie. Both keys must be present;
// otherwise there is no session.
func (m *Manager) Current(r *http.Request) *models.Session {
	sess, _ := m.store.Get(r, m.name)
	auth, okAuth := sess.Values[credentialsKey].(string)
	record, okUser := sess.Values[userKey].(string)
	if !okAuth || !okUser || auth == "" || record == "" {
		return nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(record), &user); err != nil {
		m.logger.Warn("discarding corrupt user record", zap.Error(err))
		return nil
	}
	return &models.Session{User: user, Credentials: auth}
}

// AuthHeader returns the current credential verbatim, or "" when signed out.
func (m *Manager) AuthHeader(r *http.Request) string {
	if s := m.Current(r); s != nil {
		return s.Credentials
	}
	return ""
}

// IsAuthenticated reports whether a user record is present.
func (m *Manager) IsAuthenticated(r *http.Request) bool {
	return m.Current(r).IsAuthenticated()
}

// Success queues a success notification for the next rendered page.
func (m *Manager) Success(r *http.Request, w http.ResponseWriter, message string) {
	m.flash(r, w, flashSuccessKey, message)
}

// Error queues an error notification for the next rendered page.
func (m *Manager) Error(r *http.Request, w http.ResponseWriter, message string) {
	m.flash(r, w, flashErrorKey, message)
}

func (m *Manager) flash(r *http.Request, w http.ResponseWriter, key, message string) {
	sess, _ := m.store.Get(r, m.name)
	sess.AddFlash(message, key)
	if err := sess.Save(r, w); err != nil {
		m.logger.Error("failed to queue notification", zap.Error(err))
	}
}

// Notices pops all queued notifications.
func (m *Manager) Notices(r *http.Request, w http.ResponseWriter) (successes, errors []string) {
	sess, _ := m.store.Get(r, m.name)
	for _, f := range sess.Flashes(flashSuccessKey) {
		if s, ok := f.(string); ok {
			successes = append(successes, s)
		}
	}
	for _, f := range sess.Flashes(flashErrorKey) {
		if s, ok := f.(string); ok {
			errors = append(errors, s)
		}
	}
	if err := sess.Save(r, w); err != nil {
		m.logger.Error("failed to drain notifications", zap.Error(err))
	}
	return successes, errors
}
