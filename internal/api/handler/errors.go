package handler

import (
	"net/http"

	"github.com/mcoot/easylog/internal/api/apierr"
)

// WriteError maps err onto the API error envelope
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

func writeInvalid(w http.ResponseWriter, message string) {
	apierr.WriteError(w, apierr.NewInvalidRequestError(message))
}
