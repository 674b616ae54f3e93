package dto

import "strings"

// ErrorResponse cuerpo de error HTTP. Los clientes leen Message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de respuestas sin payload (ej. DELETE).
type MessageResponse struct {
	Message string `json:"message"`
}

// cleanNullable recorta s y convierte la cadena vacía en nil.
func cleanNullable(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
