package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash from a plain-text password using the
// given cost. A cost of 0 (or any value below bcrypt.MinCost) falls back to
// bcrypt.DefaultCost.
//
// The resulting string embeds the salt and cost parameters, so no extra
// state is needed to verify it later with [ComparePassword].
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// ComparePassword reports whether plain matches the stored bcrypt hash.
// The comparison is constant-time and salt-aware; any bcrypt-level error
// (malformed hash, mismatch) is reported as a non-match.
func ComparePassword(plain, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}
