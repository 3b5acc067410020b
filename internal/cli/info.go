package cli

import (
	"context"
	"fmt"
)

// Info prints the current session state: who is logged in, how many
// login attempts remain, and whether a lockout is in effect.
func (a *App) Info(ctx context.Context) error {
	if a.session.IsAuthenticated() {
		fmt.Println("Logged in as:", a.session.AuthenticatedUser)
	} else {
		fmt.Println("Not logged in.")
	}

	if a.session.Locked() {
		fmt.Printf("Locked for another %d seconds.\n", int(a.session.LockRemaining().Seconds()))
		return nil
	}

	fmt.Printf("Login attempts left: %d\n", a.authService.AttemptsLeft(a.session))
	return nil
}
