package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobboard/internal/client/session"
	"github.com/dmitrijs2005/jobboard/internal/common"
	"github.com/dmitrijs2005/jobboard/internal/logging"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// LoginForm is the login form record.
type LoginForm struct {
	Email    string
	Password string
}

// AuthFlow collects credentials, exchanges them for a token and stores it.
//
// On success the token is written to the store, the authenticated view
// state is flipped through the OnAuthenticated callback, the root view is
// opened and the form is cleared. On failure nothing but the log changes;
// the form is kept unless WithClearOnFailure is set.
type AuthFlow struct {
	auth  Authenticator
	store session.Store
	nav   Navigator
	log   logging.Logger

	policy          FailurePolicy
	onAuthenticated func(bool)
	clearOnFailure  bool

	mu   sync.Mutex
	form LoginForm
}

type AuthOption func(*AuthFlow)

// WithClearOnFailure empties the form after a failed submit as well.
func WithClearOnFailure(clear bool) AuthOption {
	return func(f *AuthFlow) { f.clearOnFailure = clear }
}

func WithAuthFailurePolicy(p FailurePolicy) AuthOption {
	return func(f *AuthFlow) { f.policy = p }
}

// OnAuthenticated registers the callback that owns the authenticated view
// state.
func OnAuthenticated(fn func(bool)) AuthOption {
	return func(f *AuthFlow) { f.onAuthenticated = fn }
}

func NewAuthFlow(auth Authenticator, store session.Store, nav Navigator, log logging.Logger, opts ...AuthOption) *AuthFlow {
	f := &AuthFlow{
		auth:            auth,
		store:           store,
		nav:             nav,
		log:             log,
		policy:          FireAndLog(log),
		onAuthenticated: func(bool) {},
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// SetField updates exactly the named field.
func (f *AuthFlow) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case FieldEmail:
		f.form.Email = value
	case FieldPassword:
		f.form.Password = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

func (f *AuthFlow) Form() LoginForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

// Submit sends the form to the server. Empty fields are rejected with
// ErrEmptyField before any request; other failures go through the policy.
func (f *AuthFlow) Submit(ctx context.Context) error {
	form := f.Form()
	if form.Email == "" {
		return fmt.Errorf("%w: %s", ErrEmptyField, FieldEmail)
	}
	if form.Password == "" {
		return fmt.Errorf("%w: %s", ErrEmptyField, FieldPassword)
	}

	resp, err := f.auth.Login(ctx, form.Email, form.Password)
	if err != nil {
		return f.fail(ctx, fmt.Errorf("login error: %w", err))
	}
	if err := f.store.SetToken(ctx, resp.Token); err != nil {
		return f.fail(ctx, fmt.Errorf("failed to save credential: %w", err))
	}

	f.log.Info(ctx, "logged in", "email", form.Email)
	f.onAuthenticated(true)
	f.nav.Navigate(common.RouteRoot)
	f.clear()
	return nil
}

// Logout drops the stored credential.
func (f *AuthFlow) Logout(ctx context.Context) error {
	if err := f.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	f.onAuthenticated(false)
	f.log.Info(ctx, "logged out")
	return nil
}

func (f *AuthFlow) fail(ctx context.Context, err error) error {
	if f.clearOnFailure {
		f.clear()
	}
	return f.policy(ctx, "login", err)
}

func (f *AuthFlow) clear() {
	f.mu.Lock()
	f.form = LoginForm{}
	f.mu.Unlock()
}
