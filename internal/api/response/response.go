// Package response renders the JSON envelope shared by every endpoint:
//
//	{"success": bool, "message": string, "data": any, "error": any}
package response

import "github.com/labstack/echo/v4"

// Envelope is the body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

// OK writes a successful envelope.
func OK(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Fail writes a failed envelope. detail is omitted when nil.
func Fail(c echo.Context, status int, message string, detail any) error {
	return c.JSON(status, Envelope{Success: false, Message: message, Error: detail})
}
