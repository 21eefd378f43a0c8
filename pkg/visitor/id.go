package visitor

import "crypto/rand"

const (
	// IDLength is the length of freshly generated identifiers.
	IDLength = 64

	// MaxIDLength bounds identifiers accepted from a decrypted cookie.
	MaxIDLength = 256

	alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// rejectAbove is the largest multiple of len(alphabet) that fits in a byte.
	// Bytes at or above it are discarded so every symbol is equally likely.
	rejectAbove = 256 - 256%len(alphabet)
)

// Generate returns length characters drawn uniformly from [A-Za-z0-9]
// using crypto/rand.
func Generate(length int) string {
	if length <= 0 {
		return ""
	}

	out := make([]byte, 0, length)
	buf := make([]byte, length+length/4)

	for len(out) < length {
		// crypto/rand.Read never fails; a broken entropy source crashes the process.
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= rejectAbove {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}

// IsValid reports whether id is a well-formed visitor identifier:
// non-empty, at most MaxIDLength bytes, ASCII letters and digits only.
func IsValid(id string) bool {
	if len(id) == 0 || len(id) > MaxIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
