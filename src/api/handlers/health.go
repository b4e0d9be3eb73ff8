package handlers

import (
	"fmt"
	"net/http"
)

// Healthcheck is the only unauthenticated route.
func Healthcheck(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		fmt.Fprintf(w, `{"status":"ok"}`)
	} else {
		fmt.Fprintf(w, "Method not available: %s", r.Method)
	}
}
