package dto

// ErrorResponse cuerpo de error HTTP. Message lleva el texto del error de
// dominio tal cual; los clientes lo muestran sin reformatear.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
