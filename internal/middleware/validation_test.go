package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMessageContent(t *testing.T) {
	assert.NoError(t, ValidateMessageContent("hello"))
	assert.Error(t, ValidateMessageContent(""))
	assert.Error(t, ValidateMessageContent(strings.Repeat("a", maxMessageBytes+1)))
	assert.Error(t, ValidateMessageContent(string([]byte{0xff, 0xfe})))
}

func TestValidateClientID(t *testing.T) {
	assert.NoError(t, ValidateClientID("real-estate-demo"))
	assert.NoError(t, ValidateClientID(""))
	assert.Error(t, ValidateClientID(strings.Repeat("x", 65)))
}
