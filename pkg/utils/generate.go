package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GenerateBookingRef returns a unique reference correlating an intake
// submission with its payment and lead-log entry. It always returns a usable
// string: when the crypto randomness source is unavailable it falls back to a
// timestamp-plus-pseudo-random composite.
func GenerateBookingRef() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallbackBookingRef()
	}
	return id.String()
}

func fallbackBookingRef() string {
	now := time.Now()

	// Format: BK-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%06d", rand.Intn(1000000))

	return fmt.Sprintf("BK-%s-%s-%s", datePart, timePart, randomPart)
}
