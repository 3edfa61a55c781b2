package dto

// ErrorResponse cuerpo de error HTTP. Code es una taxonomía fija; Message
// nunca expone detalle interno del servidor.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
