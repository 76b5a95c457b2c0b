package seal

import (
	"errors"
	"testing"

	perrors "github.com/PolarWolf314/pageseal/internal/errors"
)

func newTestUnlocker(t *testing.T, doc string) *Unlocker {
	t.Helper()
	env, err := Encrypt([]byte(doc), []byte("secret"), testIterations)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	return NewUnlocker(env)
}

func TestUnlockerRetriesUntilRendered(t *testing.T) {
	u := newTestUnlocker(t, "<p>unlocked</p>")

	if got := u.State(); got != AwaitingPassword {
		t.Fatalf("initial state = %v, want %v", got, AwaitingPassword)
	}

	for i := 0; i < 3; i++ {
		if _, err := u.Submit([]byte("wrong")); !errors.Is(err, perrors.ErrDecryptFailed) {
			t.Fatalf("attempt %d err = %v, want ErrDecryptFailed", i, err)
		}
		if got := u.State(); got != AwaitingPassword {
			t.Fatalf("state after failure = %v, want %v", got, AwaitingPassword)
		}
	}

	got, err := u.Submit([]byte("secret"))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if string(got) != "<p>unlocked</p>" {
		t.Errorf("Submit() = %q", got)
	}
	if state := u.State(); state != Rendered {
		t.Errorf("state = %v, want %v", state, Rendered)
	}

	again, err := u.Submit([]byte("anything"))
	if err != nil || string(again) != "<p>unlocked</p>" {
		t.Errorf("Submit after Rendered = %q, %v; want plaintext and nil", again, err)
	}
}

func TestUnlockerCorruptEnvelopeLooksLikeWrongPassphrase(t *testing.T) {
	u := newTestUnlocker(t, "doc")
	u.envelope.Ciphertext = "%%%"

	if _, err := u.Submit([]byte("secret")); !errors.Is(err, perrors.ErrDecryptFailed) {
		t.Errorf("err = %v, want ErrDecryptFailed", err)
	}
	if got := u.State(); got != AwaitingPassword {
		t.Errorf("state = %v, want %v", got, AwaitingPassword)
	}
}

func TestUnlockerSupersedesStaleAttempt(t *testing.T) {
	u := newTestUnlocker(t, "<p>latest wins</p>")

	entered := make(chan struct{})
	release := make(chan struct{})
	u.derive = func(passphrase, salt []byte, iterations int) []byte {
		if string(passphrase) == "slow" {
			close(entered)
			<-release
		}
		return DeriveKey(passphrase, salt, iterations)
	}

	type result struct {
		plaintext []byte
		err       error
	}
	stale := make(chan result, 1)
	go func() {
		plaintext, err := u.Submit([]byte("slow"))
		stale <- result{plaintext, err}
	}()

	<-entered
	if got := u.State(); got != Deriving {
		t.Fatalf("state while deriving = %v, want %v", got, Deriving)
	}

	got, err := u.Submit([]byte("secret"))
	if err != nil {
		t.Fatalf("latest Submit failed: %v", err)
	}
	if string(got) != "<p>latest wins</p>" {
		t.Errorf("latest Submit() = %q", got)
	}

	close(release)
	res := <-stale
	if !errors.Is(res.err, perrors.ErrSuperseded) {
		t.Errorf("stale attempt err = %v, want ErrSuperseded", res.err)
	}
	if res.plaintext != nil {
		t.Error("stale attempt returned content")
	}
	if state := u.State(); state != Rendered {
		t.Errorf("state after stale attempt = %v, want %v", state, Rendered)
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		AwaitingPassword: "awaiting-password",
		Deriving:         "deriving",
		Decrypting:       "decrypting",
		Rendered:         "rendered",
		State(42):        "unknown",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(state), got, want)
		}
	}
}
