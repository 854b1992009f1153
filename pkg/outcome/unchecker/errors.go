package unchecker

// UncheckedIOError reports an I/O failure rethrown from a context that
// tolerates only panics.
type UncheckedIOError struct {
	Err error
}

func (e *UncheckedIOError) Error() string {
	return "unchecked i/o: " + e.Err.Error()
}

func (e *UncheckedIOError) Unwrap() error {
	return e.Err
}

// VerifyError reports input that was expected to be well formed but was not.
type VerifyError struct {
	Err error
}

func (e *VerifyError) Error() string {
	return "verification failed: " + e.Err.Error()
}

func (e *VerifyError) Unwrap() error {
	return e.Err
}
