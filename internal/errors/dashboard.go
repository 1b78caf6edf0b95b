package errors

var (
	ErrFetchFailure = &DomainError{
		Code:    "FETCH_FAILURE",
		Message: "failed to fetch dashboard data",
	}
	ErrParseFailure = &DomainError{
		Code:    "PARSE_FAILURE",
		Message: "failed to parse dashboard data",
	}
)
