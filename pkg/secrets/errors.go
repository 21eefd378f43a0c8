package secrets

import "errors"

var (
	// Seed and key validation errors
	ErrEmptySeed    = errors.New("empty key seed")
	ErrInvalidSeed  = errors.New("invalid key seed: must be base64 encoded")
	ErrSeedTooShort = errors.New("key seed too short: need at least 32 bytes")

	// Encryption/decryption errors
	ErrEncryptionFailed  = errors.New("encryption failed")
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext format")

	// Key derivation errors
	ErrKeyDerivationFailed = errors.New("key derivation failed")
)
