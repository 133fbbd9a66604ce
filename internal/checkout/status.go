package checkout

// Status tracks where a cart's checkout lifecycle stands.
type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusSubmitting Status = "SUBMITTING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusFailed     Status = "FAILED"
)

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}
