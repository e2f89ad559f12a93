package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Credential hashes live in a database shared with the peer system, which
// writes them in the Django encoded form:
//
//	pbkdf2_sha256$<iterations>$<salt>$<base64 digest>
//
// Verification has to reproduce that exact derivation.

const pbkdf2Algorithm = "pbkdf2_sha256"

// DefaultHashIterations matches the cost the peer system currently uses.
const DefaultHashIterations = 260000

// VerifyPassword checks a plaintext password against a stored encoded hash.
// Malformed or empty hashes verify false rather than erroring; the stored
// value is peer-controlled input. Digest comparison is constant-time.
func VerifyPassword(plain, encoded string) bool {
	iterations, salt, digest, err := decodeHash(encoded)
	if err != nil {
		return false
	}
	derived := pbkdf2.Key([]byte(plain), salt, iterations, len(digest), sha256.New)
	return subtle.ConstantTimeCompare(derived, digest) == 1
}

// HashPassword produces an encoded hash in the shared format.
func HashPassword(plain, salt string, iterations int) string {
	if iterations <= 0 {
		iterations = DefaultHashIterations
	}
	derived := pbkdf2.Key([]byte(plain), []byte(salt), iterations, sha256.Size, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s",
		pbkdf2Algorithm, iterations, salt, base64.StdEncoding.EncodeToString(derived))
}

func decodeHash(encoded string) (iterations int, salt, digest []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 {
		return 0, nil, nil, fmt.Errorf("malformed password hash")
	}
	if parts[0] != pbkdf2Algorithm {
		return 0, nil, nil, fmt.Errorf("unsupported hash algorithm %q", parts[0])
	}
	iterations, err = strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return 0, nil, nil, fmt.Errorf("invalid iteration count %q", parts[1])
	}
	if parts[2] == "" {
		return 0, nil, nil, fmt.Errorf("empty salt")
	}
	digest, err = base64.StdEncoding.DecodeString(parts[3])
	if err != nil || len(digest) == 0 {
		return 0, nil, nil, fmt.Errorf("invalid digest encoding")
	}
	return iterations, []byte(parts[2]), digest, nil
}
