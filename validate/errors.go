package validate

import (
	"fmt"
	"reflect"
)

// ErrorType classifies engine faults. The type is part of the wire contract:
// callers branch on it, so the values are stable strings rather than bare
// iota constants.
type ErrorType string

const (
	// InvalidInput marks input the engine refuses to evaluate at all, such
	// as a non-string candidate or a non-sequence batch.
	InvalidInput ErrorType = "InvalidInput"

	// InvalidLength marks a candidate longer than MaxLength bytes.
	InvalidLength ErrorType = "InvalidLength"

	// EngineFault marks an internal failure inside the engine itself.
	EngineFault ErrorType = "EngineFault"
)

// An Error is a fault: a problem that prevented the engine from evaluating a
// candidate at all. Faults travel on the error return and are distinct from
// negative verdicts, which are ordinary Results with IsValid set false. A
// misspelled address is a verdict; handing the engine an int is a fault.
type Error struct {
	// Type classifies the fault.
	Type ErrorType `json:"error_type"`

	// Message is a short human-readable description. Batch evaluation
	// reuses it as the ErrorMessage of the substitute Result when a fault
	// is converted to a verdict.
	Message string `json:"message"`

	// Details optionally carries diagnostic context, such as the concrete
	// type of a non-string candidate. It is never required reading.
	Details string `json:"details,omitempty"`
}

// Error renders the fault as "Type: Message".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func typeFault(v any) *Error {
	return &Error{
		Type:    InvalidInput,
		Message: "Email must be a string",
		Details: fmt.Sprintf("received %s", typeName(v)),
	}
}

func lengthFault() *Error {
	return &Error{
		Type:    InvalidLength,
		Message: fmt.Sprintf("Email exceeds maximum length of %d characters", MaxLength),
	}
}

func sequenceFault(v any) *Error {
	return &Error{
		Type:    InvalidInput,
		Message: "Emails must be an array",
		Details: fmt.Sprintf("received %s", typeName(v)),
	}
}

func panicFault(pv any) *Error {
	return &Error{
		Type:    EngineFault,
		Message: "Validation engine failure",
		Details: fmt.Sprint(pv),
	}
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
