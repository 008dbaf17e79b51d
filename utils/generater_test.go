package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTPShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}
