package respond

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// JSON encodes data before touching the response, so a value that cannot be
// encoded becomes a 500 instead of a truncated body under the wrong status.
func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		buf.Reset()
		buf.WriteString(`{"error":"Internal server error"}` + "\n")
		code = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

// Created writes a 201 with a Location header pointing at the new resource.
func Created(w http.ResponseWriter, r *http.Request, location string, data interface{}) {
	w.Header().Set("Location", location)
	JSON(w, r, http.StatusCreated, data)
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, map[string]string{"error": message})
}

func Message(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, map[string]string{"message": message})
}
