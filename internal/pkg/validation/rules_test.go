package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erdem/tamatch/internal/pkg/validation"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ada@school.edu",
		"first.last@example.com",
		"tag+filter@sub.domain.org",
	}
	for _, email := range valid {
		assert.True(t, validation.IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@tld",
		"@no-local-part.com",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		assert.False(t, validation.IsValidEmail(email), email)
	}
}
