package cookie

import "errors"

var (
	ErrNoSecret         = errors.New("cookie.no_secret")
	ErrDecryptionFailed = errors.New("cookie.decryption_failed")
	ErrEncryptionFailed = errors.New("cookie.encryption_failed")
	ErrInvalidFormat    = errors.New("cookie.invalid_format")
	ErrInsecurePrefix   = errors.New("cookie.insecure_prefix")
)
