// Package errs defines the error types the API answers with.
//
// Every *HTTPError becomes the `errors` member of the response envelope:
// a plain message, or structured field errors for validation failures.
// The internal cause is kept for logs and errors.Is/As, never for the
// client.
package errs
