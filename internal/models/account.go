// Package models defines the stored account record.
package models

// Account is one registered user: a unique, case-sensitive username, the
// PBKDF2 digest of the registration password (the plaintext is never
// stored), and the ordered, append-only list of ciphertext tokens the
// user has saved. Entry order is insertion order; there is no delete or
// edit operation.
type Account struct {
	Username     string   `json:"-"`
	PasswordHash string   `json:"password_hash"`
	Entries      []string `json:"entries"`
}
