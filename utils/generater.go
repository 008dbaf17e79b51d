package utils

import (
	"crypto/rand"
	"fmt"
)

func GenerateOTP() string {
	// Generate a 6-digit OTP
	var number [3]byte
	rand.Read(number[:])
	n := int(number[0])<<16 | int(number[1])<<8 | int(number[2])
	return fmt.Sprintf("%06d", n%1000000)
}
