package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"9876543210", "987-654-3210", "(987) 654 3210", "6123456789"}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{"", "12345", "1234567890", "5876543210", "98765432101", "abcdefghij"}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "987-654-3210", FormatPhone("9876543210"))
	assert.Equal(t, "987-654-3210", FormatPhone("(987) 654-3210"))
	// partial input stays digits-only
	assert.Equal(t, "98765", FormatPhone("98765"))
	assert.Equal(t, "", FormatPhone(""))
}
