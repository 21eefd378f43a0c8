// Package secrets provides the key material and authenticated encryption
// used to protect cookie payloads.
//
// A process-wide seed (typically the SECRET_KEY environment variable) is
// base64 decoded and stretched into a 32-byte key with HKDF-SHA-256. The
// derived key is used with XChaCha20-Poly1305 to seal small payloads such
// as visitor identifiers.
//
// On successful encryption the random 24-byte nonce is prepended to the
// ciphertext so that all necessary data is self-contained.
//
// # Architecture
//
//  1. Seed validation – the decoded seed must be at least 32 bytes.
//     `ParseKey` accepts the base64 form, `DeriveKey` the raw bytes.
//  2. Key derivation – HKDF(SHA-256) with `info = "valmiki-cookie-v1"`
//     yields the Key. Errors are wrapped with `ErrKeyDerivationFailed`.
//  3. Sealing – `Seal` and `Open` take optional associated data which is
//     authenticated but not encrypted. Callers bind context (for example a
//     cookie name) so a ciphertext cannot be replayed in another slot.
//
// # Usage
//
//	import "github.com/dmitrymomot/valmiki/pkg/secrets"
//
//	// Generate a seed once and store it securely
//	seed, _ := secrets.GenerateSeed()
//
//	key, err := secrets.ParseKey(seed)
//	if err != nil {
//	    // refuse to start
//	}
//
//	ct, err := secrets.Seal(key, []byte("payload"), []byte("context"))
//	pt, err := secrets.Open(key, ct, []byte("context"))
//
// # Error Handling
//
// All public functions return errors that wrap a sentinel package error
// such as `ErrInvalidSeed` or `ErrDecryptionFailed`. Use `errors.Is` to
// match against these sentinels.
//
// # Performance Considerations
//
// A Key is a fixed-size array, safe to share between goroutines by value.
// Seal and Open allocate one AEAD instance per call; payloads are expected
// to be tiny.
package secrets
