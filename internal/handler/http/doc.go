// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware serving the
// merged message catalogs. Cross-cutting concerns such as request tracing,
// access logging, request-culture negotiation, and response compression are
// handled in this package before requests are delegated to the service layer.
package http
