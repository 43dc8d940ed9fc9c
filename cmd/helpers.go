package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
)

// serverError logs the error with a stack trace and replies with a
// 500. The error string is surfaced to the client, matching the
// original API's choice to expose failure details.
func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)
	app.errorJSON(w, http.StatusInternalServerError, err.Error())
}

func (app *application) errorJSON(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
