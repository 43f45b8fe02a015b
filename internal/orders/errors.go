package orders

// ValidationError reports order input that failed validation before
// any network activity.
type ValidationError struct {
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Reason
}
