package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	encoded, err := Hash("s3nha-f0rte")
	require.NoError(t, err)

	assert.True(t, Verify("s3nha-f0rte", encoded))
	assert.False(t, Verify("outra-senha", encoded))
}

func TestHashesAreSalted(t *testing.T) {
	a, err := Hash("mesma-senha")
	require.NoError(t, err)
	b, err := Hash("mesma-senha")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, Verify("mesma-senha", a))
	assert.True(t, Verify("mesma-senha", b))
}

func TestVerifyRejectsMalformedEncodings(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=1,p=4$saltonly",
		"$bcrypt$whatever",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$!!!",
	} {
		assert.False(t, Verify("senha", encoded), encoded)
	}
}
