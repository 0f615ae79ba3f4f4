package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidAmount(t *testing.T) {
	req := require.New(t)

	req.True(IsValidAmount("1"))
	req.True(IsValidAmount("0.00000001"))
	req.True(IsValidAmount("12345.678"))

	req.False(IsValidAmount(""))
	req.False(IsValidAmount("abc"))
	req.False(IsValidAmount("0"))
	req.False(IsValidAmount("-1.5"))
}
