package middleware

import (
	"errors"
	"unicode/utf8"
)

// maxMessageBytes caps a single chat message at roughly 100KB.
const maxMessageBytes = 100000

// ValidateMessageContent validates an inbound chat message.
func ValidateMessageContent(content string) error {
	if len(content) == 0 {
		return errors.New("content cannot be empty")
	}
	if len(content) > maxMessageBytes {
		return errors.New("content exceeds maximum length")
	}
	if !utf8.ValidString(content) {
		return errors.New("content must be valid UTF-8")
	}
	return nil
}

// ValidateClientID validates a client identifier.
func ValidateClientID(id string) error {
	if len(id) > 64 {
		return errors.New("client ID exceeds maximum length")
	}
	return nil
}
