package common

// Wipe overwrites a byte slice with zeros. Used to clear passwords and
// passphrases from memory once they are no longer needed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
