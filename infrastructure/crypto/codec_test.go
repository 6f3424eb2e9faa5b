package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodec_EncryptDecrypt_RoundTrip(t *testing.T) {
	codec, err := NewCodec("local-dev-encryption-secret")
	require.NoError(t, err)

	cases := []string{
		"ya29.a0AfH6SMBexampleaccesstoken",
		"",
		"한글 비밀 토큰 🎬",
		"with\nnewlines\tand\ttabs",
	}
	for _, plaintext := range cases {
		ciphertext, err := codec.Encrypt(plaintext)
		require.NoError(t, err)
		require.NotEqual(t, plaintext, ciphertext)

		decrypted, err := codec.Decrypt(ciphertext)
		require.NoError(t, err)
		require.Equal(t, plaintext, decrypted)
	}
}

func TestCodec_Encrypt_NonDeterministic(t *testing.T) {
	codec, err := NewCodec("local-dev-encryption-secret")
	require.NoError(t, err)

	a, err := codec.Encrypt("same input")
	require.NoError(t, err)
	b, err := codec.Encrypt("same input")
	require.NoError(t, err)
	// Random nonce per call; identical plaintexts must not collide.
	require.NotEqual(t, a, b)
}

func TestCodec_Decrypt_WrongKey(t *testing.T) {
	codec1, err := NewCodec("first-key")
	require.NoError(t, err)
	codec2, err := NewCodec("second-key")
	require.NoError(t, err)

	ciphertext, err := codec1.Encrypt("secret refresh token")
	require.NoError(t, err)

	_, err = codec2.Decrypt(ciphertext)
	require.Error(t, err)
}

func TestCodec_Decrypt_Malformed(t *testing.T) {
	codec, err := NewCodec("key")
	require.NoError(t, err)

	_, err = codec.Decrypt("not-hex")
	require.Error(t, err)

	_, err = codec.Decrypt("abcd") // shorter than a nonce
	require.Error(t, err)
}

func TestNewCodec_EmptySecret(t *testing.T) {
	_, err := NewCodec("")
	require.Error(t, err)
}
