package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dkrasnov/safekeep/internal/common"
	"github.com/dkrasnov/safekeep/internal/cryptox"
)

// Retrieve prompts for a token and its passphrase and prints the
// decrypted secret. Every decryption failure, whatever the cause,
// surfaces as one generic message so the output does not hint at what
// went wrong.
func (a *App) Retrieve(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first.")
		return nil
	}

	token, err := getSimpleText(a.reader, "Paste the encrypted token", os.Stdout)
	if err != nil {
		return err
	}

	passkey, err := getPassword(os.Stdout, "Enter passkey: ")
	if err != nil {
		return err
	}
	defer common.Wipe(passkey)

	plaintext, err := a.vaultService.Retrieve(ctx, a.session, token, string(passkey))
	switch {
	case err == nil:
		fmt.Println("Decrypted data:")
		fmt.Println(plaintext)
		return nil
	case errors.Is(err, cryptox.ErrDecryptionFailed):
		fmt.Println("Incorrect passphrase or corrupted data.")
		return nil
	case errors.Is(err, common.ErrNotAuthenticated):
		fmt.Println("Please login first.")
		return nil
	default:
		fmt.Println(err.Error())
		return err
	}
}
