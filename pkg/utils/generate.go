package utils

import (
	"math/rand"
	"strings"
)

// ==================== BOOKING REFERENCE ====================

const (
	referencePrefix  = "BK"
	referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceLength  = 8
)

// GenerateBookingReference creates a human-readable reference like BK7G2XA9QD.
// Uniqueness is the caller's responsibility (regenerate on collision).
func GenerateBookingReference() string {
	var sb strings.Builder
	sb.WriteString(referencePrefix)
	for i := 0; i < referenceLength; i++ {
		sb.WriteByte(referenceCharset[rand.Intn(len(referenceCharset))])
	}
	return sb.String()
}
