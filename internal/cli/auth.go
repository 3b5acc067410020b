package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkrasnov/safekeep/internal/common"
)

// Register prompts the user for a username and password and attempts to
// create a new account.
//
// On success it prints a confirmation and returns nil. The password byte
// slice is wiped before returning. Recoverable conditions (missing
// fields, duplicate username) are reported to the user and swallowed;
// any other error is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Choose a password: ")
	if err != nil {
		return err
	}
	defer common.Wipe(password)

	err = a.authService.Register(ctx, userName, string(password))
	switch {
	case err == nil:
		fmt.Println("User registered successfully!")
		return nil
	case errors.Is(err, common.ErrMissingFields):
		fmt.Println("Please enter both username and password.")
		return nil
	case errors.Is(err, common.ErrAlreadyExists):
		fmt.Println("Username already exists. Please choose a different one.")
		return nil
	default:
		fmt.Println(err.Error())
		return err
	}
}

// Login prompts for credentials and tries to authenticate.
//
// A locked session is reported up front without prompting. A credential
// failure prints the remaining attempts and, when the failure trips the
// lockout, the lockout notice as well. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	if a.session.Locked() {
		fmt.Printf("Too many failed attempts. Please wait %d seconds.\n", int(a.session.LockRemaining().Seconds()))
		return nil
	}

	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.Wipe(password)

	err = a.authService.Login(ctx, a.session, userName, string(password))
	switch {
	case err == nil:
		fmt.Printf("Welcome, %s!\n", userName)
		return nil
	case errors.Is(err, common.ErrLocked):
		fmt.Printf("Too many failed attempts. Please wait %d seconds.\n", int(a.session.LockRemaining().Seconds()))
		return nil
	case errors.Is(err, common.ErrInvalidCredentials):
		fmt.Printf("Invalid credentials! Attempts left: %d\n", a.authService.AttemptsLeft(a.session))
		if a.session.Locked() {
			fmt.Printf("Too many failed attempts. Locked for %d seconds.\n", int(a.session.LockRemaining().Seconds()))
		}
		return nil
	default:
		fmt.Println(err.Error())
		return err
	}
}

// Logout drops the authenticated identity. Lockout state is kept so
// logging out does not shortcut a pending lockout.
func (a *App) Logout(ctx context.Context) error {
	a.session.Clear()
	fmt.Println("Logged out.")
	return nil
}
