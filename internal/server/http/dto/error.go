package dto

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
