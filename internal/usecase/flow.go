package usecase

import (
	"sync"
	"time"

	"sportello-booking/internal/data/entity"
)

type flowState string

const (
	stateIntake         flowState = "intake"
	statePaymentPending flowState = "payment_pending"
	stateCompleted      flowState = "completed"
	stateAbandoned      flowState = "abandoned"
)

// flow is one in-progress booking attempt. The booking ref is generated
// exactly once when the flow starts and is reused across every resubmission
// within the attempt. All fields are guarded by mu; the in-flight flags stand
// in for the disabled submit/pay controls of the form, so only one
// session-initiation or confirmation request can be outstanding at a time.
type flow struct {
	mu sync.Mutex

	id         string
	bookingRef string
	serviceID  string
	locale     string

	state  flowState
	intake entity.IntakeDraft

	clientSecret    string
	paymentIntentID string

	// lastError is the single shared error slot. It is cleared at the start
	// of every submit or pay attempt, so a new attempt always supersedes the
	// previous error display.
	lastError string

	submitInFlight bool
	payInFlight    bool

	createdAt  time.Time
	lastActive time.Time
}
