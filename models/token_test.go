package models

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_GetUserID(t *testing.T) {
	token := Token{RegisteredClaims: jwt.RegisteredClaims{Subject: "42"}}

	id, err := token.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestToken_GetUserID_Invalid(t *testing.T) {
	for _, subject := range []string{"", "abc", "1.5"} {
		token := Token{RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}

		_, err := token.GetUserID()
		assert.Error(t, err, "subject %q", subject)
	}
}

func TestToken_String(t *testing.T) {
	token := Token{SignedString: "a.b.c"}
	assert.Equal(t, "a.b.c", token.String())
}
