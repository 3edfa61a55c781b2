package hasher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tareas-pro/pkg/hasher"
)

func TestBcrypt_RoundTrip(t *testing.T) {
	h := hasher.NewBcrypt()

	for _, plain := range []string{"pw123", "una contraseña larga con espacios y ñ", ""} {
		hash, err := h.Hash(plain)
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		assert.True(t, h.Check(plain, hash), "verify(plain, hash(plain)) debe ser true")
	}
}

func TestBcrypt_PasswordAlterada_Falla(t *testing.T) {
	h := hasher.NewBcrypt()

	hash, err := h.Hash("pw123")
	require.NoError(t, err)

	assert.False(t, h.Check("pw124", hash), "password alterada no debe verificar")
	assert.False(t, h.Check("PW123", hash), "la verificación distingue mayúsculas")
}

func TestBcrypt_HashCorrupto_DevuelveFalse(t *testing.T) {
	h := hasher.NewBcrypt()

	// Un hash malformado devuelve false, nunca panic ni error al caller
	assert.False(t, h.Check("pw123", "no-es-un-hash-bcrypt"))
	assert.False(t, h.Check("pw123", ""))
}

func TestBcrypt_SaltAleatorio(t *testing.T) {
	h := hasher.NewBcrypt()

	h1, err := h.Hash("pw123")
	require.NoError(t, err)
	h2, err := h.Hash("pw123")
	require.NoError(t, err)

	// El salt va embebido en el hash: dos llamadas nunca coinciden
	assert.NotEqual(t, h1, h2)
	assert.True(t, h.Check("pw123", h1))
	assert.True(t, h.Check("pw123", h2))
}
