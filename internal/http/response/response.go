// Package response содержит типы тел ответов HTTP-сервера.
// Ошибки отдаются в виде {"detail": "..."}, подтверждения мутаций —
// в виде {"message": "..."}.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse — подтверждение выполненной мутации.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error возвращает тело ответа с ошибкой.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Detail: msg}
}

// Message возвращает подтверждение мутации.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

// ValidationError собирает человекочитаемое описание ошибок валидации.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{Detail: strings.Join(errsMsgs, ", ")}
}
