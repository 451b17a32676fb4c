package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobboard/internal/client/services"
)

// Login prompts for credentials and submits them. A failed login is logged
// by the auth flow and leaves the session untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Login cancelled: %v\n", err)
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Login cancelled: %v\n", err)
		return err
	}

	if err := a.auth.SetField(services.FieldEmail, email); err != nil {
		return err
	}
	if err := a.auth.SetField(services.FieldPassword, password); err != nil {
		return err
	}

	if err := a.auth.Submit(ctx); err != nil {
		if errors.Is(err, services.ErrEmptyField) {
			fmt.Fprintln(a.out, "Email and password are required.")
		}
		return err
	}
	route, ok := a.takeNavigation()
	if !ok {
		fmt.Fprintln(a.out, "Login failed.")
		return nil
	}
	fmt.Fprintln(a.out, "Login successful.")
	return a.enter(ctx, route)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Status prints the session state and where the client is pointed.
func (a *App) Status(ctx context.Context) error {
	state := "not logged in"
	if a.isLoggedIn() {
		state = "logged in"
	}
	fmt.Fprintf(a.out, "Session: %s\n", state)
	if a.config != nil {
		fmt.Fprintf(a.out, "Server: %s\n", a.config.ServerURL)
		fmt.Fprintf(a.out, "Session backend: %s\n", a.config.SessionBackend)
	}
	fmt.Fprintf(a.out, "View: %s\n", a.Route())
	return nil
}
