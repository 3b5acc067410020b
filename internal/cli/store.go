package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkrasnov/safekeep/internal/common"
)

// Store prompts for a secret and a passphrase, encrypts the secret, and
// saves the resulting token under the logged-in user. The token is
// printed so the user can retrieve the entry later.
func (a *App) Store(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first.")
		return nil
	}

	data, err := getMultiline(a.reader, "Enter the data to protect", os.Stdout)
	if err != nil {
		return err
	}

	passkey, err := getPassword(os.Stdout, "Enter passkey: ")
	if err != nil {
		return err
	}
	defer common.Wipe(passkey)

	token, err := a.vaultService.Store(ctx, a.session, data, string(passkey))
	switch {
	case err == nil:
		fmt.Println("Data encrypted and saved successfully!")
		fmt.Println("Token:", token)
		return nil
	case errors.Is(err, common.ErrMissingFields):
		fmt.Println("All fields are required.")
		return nil
	case errors.Is(err, common.ErrNotAuthenticated):
		fmt.Println("Please login first.")
		return nil
	default:
		fmt.Println(err.Error())
		return err
	}
}
