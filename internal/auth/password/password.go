package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	timeCost = 1
	memory   = 64 * 1024
	threads  = 4
	keyLen   = 32
	saltLen  = 16
)

// Hash encodes password with Argon2id in the standard
// $argon2id$v=19$m=...,t=...,p=...$salt$hash form.
func Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, keyLen)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory, timeCost, threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches the encoded hash. Malformed
// input verifies as false rather than returning an error.
func Verify(password, encoded string) bool {
	var (
		version int
		m, t    uint32
		p       uint8
		saltB64 string
		keyB64  string
	)
	n, err := fmt.Sscanf(encoded, "$argon2id$v=%d$m=%d,t=%d,p=%d$%s",
		&version, &m, &t, &p, &saltB64)
	if err != nil || n != 5 || version != argon2.Version {
		return false
	}
	// Sscanf's %s is greedy, so salt and key arrive joined by '$'.
	for i := 0; i < len(saltB64); i++ {
		if saltB64[i] == '$' {
			keyB64 = saltB64[i+1:]
			saltB64 = saltB64[:i]
			break
		}
	}
	if keyB64 == "" {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(keyB64)
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
