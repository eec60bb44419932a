package dto

// Response es el sobre uniforme de toda respuesta HTTP de la API:
// {"status": "OK"|"ERR", "data": <payload>}.
type Response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// OK construye un sobre de éxito.
func OK(data interface{}) Response {
	return Response{Status: "OK", Data: data}
}

// Err construye un sobre de error. Data lleva el mensaje (o la lista de
// violaciones de validación).
func Err(data interface{}) Response {
	return Response{Status: "ERR", Data: data}
}
