package dto

// ErrorResponse cuerpo de error HTTP. Error es el mensaje legible y Code un
// identificador estable para el frontend (ej. ITEMS_REQUIRED).
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
