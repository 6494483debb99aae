package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Helpers compartidos por los handlers de todos los módulos.
// Antes cada handler duplicaba su writeJSON; con seis recursos ya conviene
// tenerlo en un solo lugar.

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// NotFound responde 404 con body vacío: el contenido del mensaje
// no es parte del contrato.
func NotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ParseID interpreta un path param numérico (ids enteros asignados por el store).
func ParseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
