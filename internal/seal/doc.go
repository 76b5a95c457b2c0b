// Package seal turns a plaintext HTML document into a self-decrypting
// artifact and back.
//
// # Format
//
// A sealed artifact is a small HTML shell containing a password form, a
// bootstrap script, and one JSON envelope:
//
//	<script id="pageseal-envelope" type="application/json">
//	{"v":1,"alg":"AES-256-GCM","kdf":"PBKDF2-SHA256","iter":3000000,
//	 "salt":"<base64>","iv":"<base64>","ct":"<base64>"}
//	</script>
//
// The key is PBKDF2-HMAC-SHA256(passphrase, salt, iter) truncated to 32
// bytes. The document is encrypted with AES-256-GCM under a 12-byte IV; ct
// is the ciphertext followed by the 16-byte tag, which is the layout
// WebCrypto's AES-GCM decrypt expects. Salt (32 bytes) and IV are fresh for
// every Seal call.
//
// # Runtime
//
// The bootstrap script and [Unlocker] implement the same state machine:
//
//	AwaitingPassword -> Deriving -> Decrypting -> Rendered
//	                                          \-> AwaitingPassword
//
// Every submitted passphrase is an attempt with an increasing identity. An
// attempt whose identity is no longer the latest when it finishes is
// discarded instead of applied. There is no retry limit; the iteration
// count is the only brute-force defence. Wrong passphrases and tampered
// ciphertext fail identically.
//
// # Usage
//
//	sealed, err := seal.Seal(doc, passphrase, seal.DefaultIterations)
//
//	env, err := seal.Parse(sealed)
//	doc, err := seal.Open(env, passphrase)
package seal
