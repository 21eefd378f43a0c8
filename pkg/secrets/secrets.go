package secrets

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
)

// Overhead is the number of bytes Seal adds to the plaintext: a 24-byte
// random nonce in front and a 16-byte Poly1305 tag at the end.
const Overhead = chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead

func newAEAD(key Key) (cipher.AEAD, error) {
	return chacha20poly1305.NewX(key[:])
}

// Seal encrypts and authenticates data under key. additionalData is
// authenticated but not encrypted; Open must be given the same bytes.
func Seal(key Key, data, additionalData []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	out := make([]byte, chacha20poly1305.NonceSizeX, len(data)+Overhead)
	if _, err := rand.Read(out); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return aead.Seal(out, out, data, additionalData), nil
}

// Open reverses Seal. Input shorter than Overhead yields ErrInvalidCiphertext;
// a wrong key, wrong additionalData or any modified byte yields
// ErrDecryptionFailed.
func Open(key Key, sealed, additionalData []byte) ([]byte, error) {
	if len(sealed) < Overhead {
		return nil, ErrInvalidCiphertext
	}

	aead, err := newAEAD(key)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}

	nonce, ciphertext := sealed[:chacha20poly1305.NonceSizeX], sealed[chacha20poly1305.NonceSizeX:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return plaintext, nil
}
