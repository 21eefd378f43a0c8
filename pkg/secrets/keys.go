package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the size of a derived AEAD key.
	KeySize = 32 // 256 bits for XChaCha20-Poly1305

	// MinSeedSize is the minimum amount of decoded seed material.
	MinSeedSize = 32

	// saltInfo is used for HKDF key derivation to provide domain separation
	saltInfo = "valmiki-cookie-v1"
)

// Key is a derived symmetric key. It is a value type: copies are
// independent and nothing in this package mutates a Key after derivation.
type Key [KeySize]byte

// ParseKey decodes a standard base64 seed and derives a Key from it.
// Surrounding whitespace is ignored so values pasted into env files work.
func ParseKey(encoded string) (Key, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return Key{}, ErrEmptySeed
	}

	seed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Key{}, errors.Join(ErrInvalidSeed, err)
	}
	defer clearBytes(seed)

	return DeriveKey(seed)
}

// ParseKeys parses every seed in order. The first error aborts parsing.
func ParseKeys(encoded ...string) ([]Key, error) {
	keys := make([]Key, 0, len(encoded))
	for i, e := range encoded {
		k, err := ParseKey(e)
		if err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// DeriveKey stretches raw seed material into a Key using HKDF-SHA-256.
func DeriveKey(seed []byte) (Key, error) {
	if len(seed) < MinSeedSize {
		return Key{}, ErrSeedTooShort
	}

	hkdfReader := hkdf.New(sha256.New, seed, nil, []byte(saltInfo))

	var key Key
	if _, err := io.ReadFull(hkdfReader, key[:]); err != nil {
		return Key{}, errors.Join(ErrKeyDerivationFailed, err)
	}

	return key, nil
}

// GenerateSeed returns a fresh base64 encoded seed suitable for SECRET_KEY.
func GenerateSeed() (string, error) {
	seed := make([]byte, 64)
	if _, err := rand.Read(seed); err != nil {
		return "", err
	}
	defer clearBytes(seed)
	return base64.StdEncoding.EncodeToString(seed), nil
}

// clearBytes zeros out a byte slice holding seed material.
func clearBytes(b []byte) { clear(b) }
