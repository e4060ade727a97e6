package fireeagle

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignKnownVector(t *testing.T) {
	// sha1("s3cr3t" + "appid" + "123" + "timestamp" + "1000")
	sum := sha1.Sum([]byte("s3cr3tappid123timestamp1000"))
	expected := hex.EncodeToString(sum[:])

	got := Sign("s3cr3t", map[string]string{
		"appid":     "123",
		"timestamp": "1000",
	})
	assert.Equal(t, expected, got)
}

func TestSignDeterministic(t *testing.T) {
	params := map[string]string{
		"appid":     "123",
		"userid":    "tok",
		"timestamp": "1000",
	}

	first := Sign("secret", params)
	second := Sign("secret", params)
	assert.Equal(t, first, second)
}

func TestSignSortsKeysAscending(t *testing.T) {
	// Insertion order must not matter; only byte-ascending key order does.
	a := map[string]string{"b": "2", "a": "1", "c": "3"}
	b := map[string]string{"c": "3", "a": "1", "b": "2"}
	assert.Equal(t, Sign("secret", a), Sign("secret", b))

	sum := sha1.Sum([]byte("secreta1b2c3"))
	assert.Equal(t, hex.EncodeToString(sum[:]), Sign("secret", a))
}

func TestSignExcludesSigField(t *testing.T) {
	params := map[string]string{"appid": "123", "timestamp": "1000"}
	withSig := map[string]string{"appid": "123", "timestamp": "1000", "sig": "bogus"}

	assert.Equal(t, Sign("secret", params), Sign("secret", withSig))
}

func TestSignSensitivity(t *testing.T) {
	base := Sign("secret", map[string]string{"appid": "123", "timestamp": "1000"})

	tests := []struct {
		name   string
		secret string
		params map[string]string
	}{
		{
			name:   "changed value",
			secret: "secret",
			params: map[string]string{"appid": "124", "timestamp": "1000"},
		},
		{
			name:   "added key",
			secret: "secret",
			params: map[string]string{"appid": "123", "timestamp": "1000", "userid": "x"},
		},
		{
			name:   "removed key",
			secret: "secret",
			params: map[string]string{"appid": "123"},
		},
		{
			name:   "changed secret",
			secret: "secret2",
			params: map[string]string{"appid": "123", "timestamp": "1000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, Sign(tt.secret, tt.params))
		})
	}
}
