package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
)

// Envelope is the uniform response body for every endpoint, success or
// failure. Data is always present in the JSON, null when there is no
// payload.
type Envelope struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// OK writes a success envelope with message "OK".
func OK(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, Envelope{Error: false, Message: "OK", Data: data})
}

// Created writes a 201 envelope with a creation message and the
// created entity as payload.
func Created(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusCreated, Envelope{Error: false, Message: message, Data: data})
}

// Confirm writes a success envelope with a confirmation message and no
// payload, used by updates and deletes.
func Confirm(w http.ResponseWriter, message string) {
	write(w, http.StatusOK, Envelope{Error: false, Message: message, Data: nil})
}

// Fail maps err to a status code and writes a failure envelope. This
// is the one place expected failure kinds turn into HTTP statuses;
// unclassified errors are logged and degraded to a generic 500 so no
// internal detail leaks to the caller.
func Fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusFailedDependency
	case apperr.KindBadRequest:
		status = http.StatusBadRequest
	}

	msg := "internal server error"
	var e *apperr.Error
	if errors.As(err, &e) && e.Kind != apperr.KindInternal {
		msg = e.Message
	} else {
		log.Printf("[error] %v", err)
	}
	write(w, status, Envelope{Error: true, Message: msg, Data: nil})
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[error] encode response: %v", err)
	}
}
