package seal

import (
	"encoding/base64"
	"fmt"

	perrors "github.com/PolarWolf314/pageseal/internal/errors"
)

const (
	// EnvelopeVersion is the only envelope version this package reads and writes.
	EnvelopeVersion = 1

	// Algorithm identifies AES-256-GCM with the tag appended to the ciphertext.
	Algorithm = "AES-256-GCM"

	// KDF identifies PBKDF2 with HMAC-SHA256.
	KDF = "PBKDF2-SHA256"

	// DefaultIterations keeps in-browser derivation to a few seconds.
	DefaultIterations = 3_000_000

	// MaxIterations bounds the work factor an artifact may demand of a reader.
	MaxIterations = 100_000_000

	SaltSize = 32
	IVSize   = 12
	KeySize  = 32
	TagSize  = 16

	// MinSaltSize is the smallest salt Parse accepts.
	MinSaltSize = 16
)

// Envelope is the JSON record embedded in a sealed artifact. Byte fields are
// standard base64 so the record can sit inside HTML without escaping.
type Envelope struct {
	Version    int    `json:"v"`
	Algorithm  string `json:"alg"`
	KDF        string `json:"kdf"`
	Iterations int    `json:"iter"`
	Salt       string `json:"salt"`
	IV         string `json:"iv"`
	Ciphertext string `json:"ct"`
}

// decoded holds the raw bytes behind an Envelope.
type decoded struct {
	salt       []byte
	iv         []byte
	ciphertext []byte
}

// Validate checks that the envelope is one this package can open.
func (e Envelope) Validate() error {
	_, err := e.decode()
	return err
}

func (e Envelope) decode() (decoded, error) {
	if e.Version != EnvelopeVersion {
		return decoded{}, fmt.Errorf("%w: unsupported version %d", perrors.ErrInvalidArtifact, e.Version)
	}
	if e.Algorithm != Algorithm {
		return decoded{}, fmt.Errorf("%w: unsupported algorithm %q", perrors.ErrInvalidArtifact, e.Algorithm)
	}
	if e.KDF != KDF {
		return decoded{}, fmt.Errorf("%w: unsupported KDF %q", perrors.ErrInvalidArtifact, e.KDF)
	}
	if e.Iterations < 1 || e.Iterations > MaxIterations {
		return decoded{}, fmt.Errorf("%w: iteration count %d", perrors.ErrInvalidArtifact, e.Iterations)
	}

	salt, err := base64.StdEncoding.DecodeString(e.Salt)
	if err != nil {
		return decoded{}, fmt.Errorf("%w: invalid salt encoding: %v", perrors.ErrInvalidArtifact, err)
	}
	if len(salt) < MinSaltSize {
		return decoded{}, fmt.Errorf("%w: salt is %d bytes, want at least %d", perrors.ErrInvalidArtifact, len(salt), MinSaltSize)
	}

	iv, err := base64.StdEncoding.DecodeString(e.IV)
	if err != nil {
		return decoded{}, fmt.Errorf("%w: invalid IV encoding: %v", perrors.ErrInvalidArtifact, err)
	}
	if len(iv) != IVSize {
		return decoded{}, fmt.Errorf("%w: IV is %d bytes, want %d", perrors.ErrInvalidArtifact, len(iv), IVSize)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(e.Ciphertext)
	if err != nil {
		return decoded{}, fmt.Errorf("%w: invalid ciphertext encoding: %v", perrors.ErrInvalidArtifact, err)
	}
	if len(ciphertext) < TagSize {
		return decoded{}, fmt.Errorf("%w: ciphertext shorter than the authentication tag", perrors.ErrInvalidArtifact)
	}

	return decoded{salt: salt, iv: iv, ciphertext: ciphertext}, nil
}
