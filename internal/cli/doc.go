// Package cli provides the interactive safekeep command-line client.
//
// It wires configuration, the account store, and the auth and vault
// services into an interactive REPL. Typical flow: register or log in,
// then store, retrieve, and list encrypted entries.
//
// Key features:
//   - Register / Login with a brute-force lockout
//   - Store: encrypt a secret under a passphrase-derived key
//   - Retrieve: decrypt a stored token with its passphrase
//   - List stored tokens
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runShell for details.
package cli
