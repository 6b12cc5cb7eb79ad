package http

import (
	"bytes"
	"encoding/json"
)

// DecodeJSON decodificador de cuerpos para fiber.Config.JSONDecoder. Conserva los números
// como json.Number para que los montos en campos any no pasen por float64.
func DecodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
