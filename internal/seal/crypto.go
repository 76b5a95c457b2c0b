package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	perrors "github.com/PolarWolf314/pageseal/internal/errors"
)

// DeriveKey derives the AES-256 key for passphrase and salt. The browser
// runtime performs the same derivation with WebCrypto.
func DeriveKey(passphrase, salt []byte, iterations int) []byte {
	return pbkdf2.Key(passphrase, salt, iterations, KeySize, sha256.New)
}

// Encrypt derives a key from passphrase under a fresh salt and encrypts
// plaintext under a fresh IV.
func Encrypt(plaintext, passphrase []byte, iterations int) (Envelope, error) {
	if strings.TrimSpace(string(passphrase)) == "" {
		return Envelope{}, perrors.ErrEmptyPassphrase
	}
	if iterations < 1 || iterations > MaxIterations {
		return Envelope{}, fmt.Errorf("%w: got %d, want 1 to %d", perrors.ErrInvalidIterations, iterations, MaxIterations)
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return Envelope{}, fmt.Errorf("failed to generate salt: %w", err)
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return Envelope{}, fmt.Errorf("failed to generate IV: %w", err)
	}

	key := DeriveKey(passphrase, salt, iterations)
	defer zeroBytes(key)

	aead, err := newAEAD(key)
	if err != nil {
		return Envelope{}, err
	}

	ciphertext := aead.Seal(nil, iv, plaintext, nil)

	return Envelope{
		Version:    EnvelopeVersion,
		Algorithm:  Algorithm,
		KDF:        KDF,
		Iterations: iterations,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(iv),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Open decrypts the envelope with passphrase. A wrong passphrase and a
// modified envelope both return ErrDecryptFailed.
func Open(env Envelope, passphrase []byte) ([]byte, error) {
	raw, err := env.decode()
	if err != nil {
		return nil, perrors.ErrDecryptFailed
	}

	key := DeriveKey(passphrase, raw.salt, env.Iterations)
	defer zeroBytes(key)

	return openWithKey(key, raw)
}

func openWithKey(key []byte, raw decoded) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, perrors.ErrDecryptFailed
	}

	plaintext, err := aead.Open(nil, raw.iv, raw.ciphertext, nil)
	if err != nil {
		return nil, perrors.ErrDecryptFailed
	}
	return plaintext, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aead, nil
}

// zeroBytes overwrites a byte slice with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
