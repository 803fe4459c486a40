package reference_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/shared/reference"
)

func TestNewFormat(t *testing.T) {
	ref := reference.New(reference.BookingPrefix)

	assert.Regexp(t, regexp.MustCompile(`^BK-\d{8}-[0-9A-F]{8}$`), ref)
}

func TestNewUnique(t *testing.T) {
	seen := map[string]bool{}

	for range 100 {
		ref := reference.New(reference.BookingPrefix)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}
