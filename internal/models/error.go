package models

// ErrorResponse is the body of every error returned by the API.
// Detail is either a message or the list of offending fields.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

// Error messages shared by the controllers
const (
	MsgDatabaseUnavailable = "Database not available"
	MsgInternalServer      = "Internal server error"
)

// NewErrorResponse creates a new error body from a message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Detail: message}
}

// NewValidationErrorResponse creates an error body listing every invalid field
func NewValidationErrorResponse(err *ValidationError) ErrorResponse {
	return ErrorResponse{Detail: err.Fields}
}
