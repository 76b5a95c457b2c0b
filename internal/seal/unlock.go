package seal

import (
	"sync"

	perrors "github.com/PolarWolf314/pageseal/internal/errors"
)

// State is a step of the unlock state machine.
type State int

const (
	AwaitingPassword State = iota
	Deriving
	Decrypting
	Rendered
)

func (s State) String() string {
	switch s {
	case AwaitingPassword:
		return "awaiting-password"
	case Deriving:
		return "deriving"
	case Decrypting:
		return "decrypting"
	case Rendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// Unlocker is the Go counterpart of the bootstrap script: it accepts
// passphrase attempts until one decrypts the envelope. Submit may be called
// concurrently; only the most recently submitted attempt can change state.
type Unlocker struct {
	envelope Envelope
	derive   func(passphrase, salt []byte, iterations int) []byte

	mu        sync.Mutex
	state     State
	latest    uint64
	plaintext []byte
}

// NewUnlocker returns an Unlocker awaiting a passphrase for env.
func NewUnlocker(env Envelope) *Unlocker {
	return &Unlocker{
		envelope: env,
		derive:   DeriveKey,
		state:    AwaitingPassword,
	}
}

// State returns the current state.
func (u *Unlocker) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// Submit runs one unlock attempt. It returns the plaintext on success,
// ErrDecryptFailed when the passphrase is wrong or the envelope corrupt (the
// Unlocker returns to AwaitingPassword), and ErrSuperseded when a newer
// attempt was submitted while this one was running. Once Rendered, Submit
// returns the plaintext without deriving again.
func (u *Unlocker) Submit(passphrase []byte) ([]byte, error) {
	u.mu.Lock()
	if u.state == Rendered {
		plaintext := u.plaintext
		u.mu.Unlock()
		return plaintext, nil
	}
	u.latest++
	id := u.latest
	u.state = Deriving
	u.mu.Unlock()

	raw, err := u.envelope.decode()
	if err != nil {
		return nil, u.fail(id)
	}

	key := u.derive(passphrase, raw.salt, u.envelope.Iterations)
	defer zeroBytes(key)

	if !u.advance(id, Decrypting) {
		return nil, perrors.ErrSuperseded
	}

	plaintext, err := openWithKey(key, raw)

	u.mu.Lock()
	defer u.mu.Unlock()
	if id != u.latest || u.state == Rendered {
		return nil, perrors.ErrSuperseded
	}
	if err != nil {
		u.state = AwaitingPassword
		return nil, perrors.ErrDecryptFailed
	}
	u.state = Rendered
	u.plaintext = plaintext
	return plaintext, nil
}

// advance moves to next if attempt id is still the latest.
func (u *Unlocker) advance(id uint64, next State) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if id != u.latest || u.state == Rendered {
		return false
	}
	u.state = next
	return true
}

func (u *Unlocker) fail(id uint64) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if id != u.latest || u.state == Rendered {
		return perrors.ErrSuperseded
	}
	u.state = AwaitingPassword
	return perrors.ErrDecryptFailed
}
