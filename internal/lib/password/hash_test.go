package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashAndCompare(t *testing.T) {
	hash, err := GetHash("Str0ng!pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Str0ng!pass", hash)

	assert.NoError(t, CompareHash(hash, "Str0ng!pass"))
	assert.Error(t, CompareHash(hash, "wrong-password"))
}

func TestGetHash_Unique(t *testing.T) {
	// bcrypt использует случайную соль, поэтому хэши не совпадают
	first, err := GetHash("Str0ng!pass")
	require.NoError(t, err)
	second, err := GetHash("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestIsStrong(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "valid password", password: "Str0ng!pass", want: true},
		{name: "too short", password: "S1!a", want: false},
		{name: "no uppercase", password: "str0ng!pass", want: false},
		{name: "no lowercase", password: "STR0NG!PASS", want: false},
		{name: "no digit", password: "Strong!pass", want: false},
		{name: "no symbol", password: "Str0ngpass1", want: false},
		{name: "empty", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrong(tt.password))
		})
	}
}
