package visitor

import "errors"

var (
	// ErrInvalidIdentity is reported when a cookie decrypts to something
	// that is not a well-formed identifier.
	ErrInvalidIdentity = errors.New("visitor.invalid_identity")

	// ErrIssueCookie wraps failures while building the outgoing cookie.
	ErrIssueCookie = errors.New("visitor.issue_cookie")

	// ErrResponseAborted is returned from Write after the response was
	// replaced by the error handler.
	ErrResponseAborted = errors.New("visitor.response_aborted")
)
