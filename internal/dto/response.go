package dto

// Response is the envelope every endpoint answers with, success or failure.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKWithMessage wraps data in a successful envelope with a human-readable message.
func OKWithMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Err builds a failure envelope with a human-readable message.
func Err(message string) Response {
	return Response{Success: false, Message: message}
}
