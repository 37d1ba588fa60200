package utils

import (
	"regexp"
	"testing"
)

func TestGenerateBookingReferenceFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^BK[A-Z0-9]{8}$`)

	for i := 0; i < 100; i++ {
		reference := GenerateBookingReference()
		if !pattern.MatchString(reference) {
			t.Fatalf("reference %q does not match BK + 8 uppercase alphanumerics", reference)
		}
	}
}
