package models

// Response messages shared by every endpoint.
const (
	MessageSuccess         = "Success"
	MessageValidationError = "Validation Error"
	MessageLoginFailed     = "Login Failed"
	MessageUserNotFound    = "User not found"
)

// Response is the uniform JSON envelope returned by every endpoint.
// Data carries the payload on success; Detail carries validation errors.
// Both are omitted when empty.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Detail  any    `json:"detail,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenData is the success payload of POST /auth/login.
type TokenData struct {
	Token string `json:"token"`
}

// FieldError is a single entry of the validation error detail list:
// the name of the offending form field and a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
