package seal

// Seal encrypts document with passphrase and returns the self-decrypting
// HTML artifact. The document is treated as opaque bytes.
//
// Returns ErrEmptyPassphrase if passphrase is empty or only whitespace and
// ErrInvalidIterations if iterations is outside 1 to MaxIterations.
func Seal(document, passphrase []byte, iterations int) ([]byte, error) {
	env, err := Encrypt(document, passphrase, iterations)
	if err != nil {
		return nil, err
	}
	return Render(env)
}

// Unseal parses artifact and decrypts it with a single passphrase. Callers
// that retry or read passphrases interactively use an Unlocker instead.
func Unseal(artifact, passphrase []byte) ([]byte, error) {
	env, err := Parse(artifact)
	if err != nil {
		return nil, err
	}
	return Open(env, passphrase)
}
