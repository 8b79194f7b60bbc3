// Package http implements the HTTP transport layer of the server.
// It provides the REST routes, the token-verification and admin-gate
// middleware, and request/response plumbing. Authentication, tracing,
// and logging concerns are handled here before requests reach the
// service layer.
package http
