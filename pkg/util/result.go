package util

// Result is the uniform response envelope for every action. Exactly one of
// the success/error branches is populated.
type Result struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   *ErrorResult `json:"error,omitempty"`
}

// ErrorResult is the failure branch of the envelope.
type ErrorResult struct {
	Code             string         `json:"code"`
	Message          string         `json:"message"`
	ValidationErrors map[string]any `json:"validationErrors,omitempty"`
}

// Ok wraps data in a success envelope.
func Ok(data any) Result {
	return Result{Success: true, Data: data}
}

// OkMessage wraps data plus a human-readable message.
func OkMessage(data any, message string) Result {
	return Result{Success: true, Data: data, Message: message}
}

// Fail builds the failure envelope from a DomainError.
func Fail(err *DomainError) Result {
	res := Result{
		Success: false,
		Error: &ErrorResult{
			Code:    err.Code,
			Message: err.Message,
		},
	}
	if len(err.Details) > 0 {
		res.Error.ValidationErrors = err.Details
	}
	return res
}
