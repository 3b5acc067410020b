package cli

import (
	"context"
	"fmt"
)

// List prints the stored tokens of the logged-in user, oldest first.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first.")
		return nil
	}

	entries, err := a.vaultService.List(ctx, a.session)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No data found.")
		return nil
	}

	for i, token := range entries {
		fmt.Printf("%d. %s\n", i+1, token)
	}
	return nil
}
