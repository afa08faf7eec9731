package dto

// ErrorResponse cuerpo de error HTTP. Details trae la lista completa de
// mensajes cuando el error es de validación.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
