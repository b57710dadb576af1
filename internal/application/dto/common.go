package dto

// ErrorResponse es la señal de falla remota uniforme: un código estable y
// una causa legible, sin detalle de implementación. Cualquier respuesta con
// esta forma significa "la operación no se aplicó".
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
