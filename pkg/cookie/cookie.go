package cookie

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/valmiki/pkg/secrets"
)

const (
	securePrefix = "__Secure-"
	hostPrefix   = "__Host-"
)

// Manager encodes cookie values and builds cookies with shared defaults.
type Manager struct {
	keys     []secrets.Key
	defaults Options
	now      func() time.Time
}

// New creates a Manager. The first key encrypts, every key is tried on
// decryption so cookies written before a rotation remain readable.
func New(keys []secrets.Key, opts ...Option) (*Manager, error) {
	if len(keys) == 0 {
		return nil, ErrNoSecret
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	defaults = applyOptions(defaults, opts)

	return &Manager{
		keys:     append([]secrets.Key(nil), keys...),
		defaults: defaults,
		now:      time.Now,
	}, nil
}

// Build returns the cookie for name and value with the manager defaults
// overridden by opts. It returns ErrInsecurePrefix when the attributes break
// the browser rules of a prefixed name.
func (m *Manager) Build(name, value string, opts ...Option) (*http.Cookie, error) {
	options := applyOptions(m.defaults, opts)

	if err := checkPrefix(name, options); err != nil {
		return nil, err
	}

	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}

	if options.Permanent {
		cookie.MaxAge = int(permanentLifetime / time.Second)
		cookie.Expires = m.now().Add(permanentLifetime).UTC()
	}

	return cookie, nil
}

// Encode encrypts value for the cookie called name. The name is bound as
// associated data: the result only decodes under the same name.
func (m *Manager) Encode(name, value string) (string, error) {
	ciphertext, err := secrets.Seal(m.keys[0], []byte(value), []byte(name))
	if err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

// Decode reverses Encode, trying every configured key in order.
func (m *Manager) Decode(name, encoded string) (string, error) {
	ciphertext, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil || len(ciphertext) < secrets.Overhead {
		return "", ErrInvalidFormat
	}

	for _, key := range m.keys {
		plaintext, err := secrets.Open(key, ciphertext, []byte(name))
		if err == nil {
			return string(plaintext), nil
		}
	}

	return "", ErrDecryptionFailed
}

// checkPrefix enforces the browser rules for prefixed cookie names so a
// misconfigured cookie fails loudly instead of being dropped by the client.
func checkPrefix(name string, o Options) error {
	switch {
	case strings.HasPrefix(name, hostPrefix):
		if !o.Secure || o.Path != "/" || o.Domain != "" {
			return fmt.Errorf("%w: %s requires Secure, Path=/ and no Domain", ErrInsecurePrefix, name)
		}
	case strings.HasPrefix(name, securePrefix):
		if !o.Secure {
			return fmt.Errorf("%w: %s requires Secure", ErrInsecurePrefix, name)
		}
	}
	return nil
}
