package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them. Plaintext never leaves the caller.
type PasswordHasher interface {
	// Hash returns a salted bcrypt hash of password. Two calls with the same
	// password return different hashes.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A malformed hash is
	// reported as a mismatch together with a non-nil error.
	Compare(hash, password string) (bool, error)

	// CompareDummy spends the same time as a real Compare against a fixed
	// hash. Used when the account does not exist so that unknown emails
	// and wrong passwords cannot be told apart by timing.
	CompareDummy(password string)
}
