package response

// Response is the uniform API envelope: success flag, optional operator
// message and optional payload.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK returns a success envelope with an optional message and payload
func OK(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Fail returns a failure envelope carrying the message
func Fail(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}
