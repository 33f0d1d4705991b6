// Package web defines common components for a web application.
package web

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) JSONError {
	return JSONError{Error: err.Error()}
}

// Response holds the common response type for all APIs.
type Response struct {
	Data  any       `json:"data,omitempty"`
	Error JSONError `json:"error,omitempty"`
}

// GetErrorMsg translates the first validation error into a user-facing message.
func GetErrorMsg(ve validator.ValidationErrors) JSONError {
	fe := ve[0]

	var msg string

	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s field is required", fe.Field())
	case "email":
		msg = fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "alphanum":
		msg = fmt.Sprintf("%s must contain only letters and numbers", fe.Field())
	default:
		msg = fmt.Sprintf("%s is invalid", fe.Field())
	}

	return JSONError{Error: msg}
}
