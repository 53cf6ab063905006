// Package http implements the REST and websocket transport of the chat
// server.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging, metrics and response compression are
// handled here before requests are delegated to the service layer. Service
// errors are translated to HTTP statuses in one table (errors_mapper.go).
package http
