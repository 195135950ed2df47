package twitteroauth

// FlowError is the single failure kind of both flows. Message names the step
// that failed and Err is whatever the prompt or OAuth client returned.
type FlowError struct {
	Message string
	Err     error
}

func (e *FlowError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

func flowError(message string, err error) *FlowError {
	return &FlowError{Message: message, Err: err}
}
