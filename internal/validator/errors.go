package validator

import "errors"

var (
	// ErrIndexMismatch means the candidate does not sit right after the tail.
	ErrIndexMismatch = errors.New("index mismatch")
	// ErrLinkageMismatch means the candidate does not point at the tail hash.
	ErrLinkageMismatch = errors.New("linkage mismatch")
	// ErrInsufficientWork means the candidate hash misses the required prefix.
	ErrInsufficientWork = errors.New("insufficient work")
	// ErrHashMismatch means the candidate hash is not the digest of its fields.
	ErrHashMismatch = errors.New("hash mismatch")
)

// IsStale reports whether err means the candidate was built against an old
// tail and has to be rebuilt rather than re-hashed.
func IsStale(err error) bool {
	return errors.Is(err, ErrIndexMismatch) || errors.Is(err, ErrLinkageMismatch)
}

// Outcome maps an admission result to a short label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrIndexMismatch):
		return "index_mismatch"
	case errors.Is(err, ErrLinkageMismatch):
		return "linkage_mismatch"
	case errors.Is(err, ErrInsufficientWork):
		return "insufficient_work"
	case errors.Is(err, ErrHashMismatch):
		return "hash_mismatch"
	default:
		return "error"
	}
}
