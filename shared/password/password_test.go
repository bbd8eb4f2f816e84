package password_test

import (
	"hotel/shared/password"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	t.Run("hashes and verifies", func(t *testing.T) {
		hashed, err := password.Hash("s3cret-pass")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-pass", hashed)
		assert.NoError(t, password.Verify("s3cret-pass", hashed))
	})

	t.Run("salts every hash", func(t *testing.T) {
		first, err := password.Hash("same")
		require.NoError(t, err)

		second, err := password.Hash("same")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := password.Hash("")
		assert.ErrorIs(t, err, password.ErrEmptyPassword)
	})
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name    string
		plain   string
		hash    string
		wantErr error
	}{
		{name: "match", plain: "correct horse", hash: hashed},
		{name: "mismatch", plain: "battery staple", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty password", plain: "", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", plain: "correct horse", hash: "", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hash)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("malformed hash", func(t *testing.T) {
		err := password.Verify("correct horse", "not-a-bcrypt-hash")
		require.Error(t, err)
		assert.NotErrorIs(t, err, password.ErrInvalidPassword)
	})
}

func TestNeedsRehash(t *testing.T) {
	weak, err := bcrypt.GenerateFromPassword([]byte("legacy"), bcrypt.MinCost)
	require.NoError(t, err)

	current, err := password.Hash("fresh")
	require.NoError(t, err)

	assert.True(t, password.NeedsRehash(string(weak)))
	assert.False(t, password.NeedsRehash(current))
	assert.False(t, password.NeedsRehash("garbage"))
}
