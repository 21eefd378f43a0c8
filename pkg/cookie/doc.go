// Package cookie provides an HTTP cookie manager with authenticated
// encryption for small values such as visitor identifiers.
//
// It builds Go's net/http `http.Cookie` values from shared defaults and
// encrypts values with the primitives from package secrets.
//
// # Overview
//
// The `Manager` type is the entry point. It is initialised with one or more
// derived keys and a set of default cookie `Options`.
//
// Once created you can:
//
//   • Encode(), Decode() – encrypt or decrypt a value bound to a cookie name
//   • Build() – construct the http.Cookie from the defaults and per-call options
//
// # Architecture
//
// Encryption uses XChaCha20-Poly1305 with a random nonce prepended to the
// ciphertext; the result is base64url encoded without padding. The cookie
// name is authenticated as associated data so a value issued for one cookie
// cannot be replayed under another name. Multiple keys enable rotation –
// the first is used for writing, all of them for reading.
//
// Names carrying the `__Secure-` or `__Host-` prefix are checked against the
// attributes browsers require for them; Build returns ErrInsecurePrefix when
// the options would make the browser drop the cookie.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/valmiki/pkg/cookie"
//		"github.com/dmitrymomot/valmiki/pkg/secrets"
//	)
//
//	key, err := secrets.ParseKey(os.Getenv("SECRET_KEY"))
//	if err != nil { log.Fatal(err) }
//
//	man, err := cookie.New([]secrets.Key{key}, cookie.WithSecure(true))
//	if err != nil { log.Fatal(err) }
//
//	http.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
//	    value, err := man.Encode("prefs", "dark")
//	    if err != nil { return }
//	    c, err := man.Build("prefs", value, cookie.WithPermanent())
//	    if err != nil { return }
//	    http.SetCookie(w, c)
//	})
//
// # Configuration
//
// The `Config` struct allows the manager to be constructed from environment
// variables via github.com/caarlos0/env. Only non-zero fields are applied.
//
//	var cfg cookie.Config
//	_ = config.Load(&cfg)
//	man, _ := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// Package-level sentinel errors are returned for common failure scenarios
// such as `ErrInvalidFormat`, `ErrDecryptionFailed` and `ErrInsecurePrefix`
// so callers can use `errors.Is`.
package cookie
