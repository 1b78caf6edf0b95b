package errors

// DomainError is a sentinel error carrying a stable machine-readable code.
// Wrap it with fmt.Errorf("%w: ...") and match it with errors.Is.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
