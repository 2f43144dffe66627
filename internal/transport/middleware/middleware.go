// Package middleware holds the HTTP middleware shared by every REST route.
package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one is the outermost:
// Chain(a, b)(h) serves a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := range mws {
			h = mws[len(mws)-1-i](h)
		}
		return h
	}
}

// errorBody mirrors the error shape of the REST handlers.
type errorBody struct {
	Error string `json:"error"`
	Msg   string `json:"msg"`
}

func writeError(w http.ResponseWriter, status int, en, ar string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: en, Msg: ar})
}
