package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// MarshalJSON encodes data without escaping HTML characters, so message
// templates such as "{{.Name}} & co" reach clients unchanged.
func MarshalJSON(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes data with MarshalJSON and writes it with statusCode.
// On an encoding failure a 500 is written instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := MarshalJSON(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
