package dto

// ErrorResponse cuerpo de error HTTP. Message es el texto que muestra la UI.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
