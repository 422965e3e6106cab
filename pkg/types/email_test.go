package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail_NormalizesToLower(t *testing.T) {
	e, err := NewEmail("Guest@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", e.String())
}

func TestNewEmail_Invalid(t *testing.T) {
	for _, bad := range []string{"", "   ", "guest", "guest@", "@example.com", "guest@example"} {
		_, err := NewEmail(bad)
		assert.ErrorIs(t, err, ErrInvalidEmail, "input %q", bad)
	}
}

func TestEmail_EqualsCaseInsensitive(t *testing.T) {
	a, err := NewEmail("guest@example.com")
	require.NoError(t, err)
	b, err := NewEmail("GUEST@EXAMPLE.COM")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	// Нормализация делает равенство через == тоже регистронезависимым
	assert.Equal(t, a, b)
	assert.True(t, a.Equals(Email("Guest@Example.Com")))
}

func TestNewPhone(t *testing.T) {
	p, err := NewPhone("+7 (495) 123-45-67")
	require.NoError(t, err)
	assert.Equal(t, "+7 (495) 123-45-67", p.String())

	_, err = NewPhone("call me")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = NewPhone("")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}
