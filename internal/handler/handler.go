// Package handler sits between the transports and the service layer.
//
// Each operation is exposed as an Endpoint: a raw request body goes in,
// an enveloped response comes out. Decoding and validation happen here
// through the validation package before the service is called, so the
// Echo router and the Lambda adapter share one pipeline.
package handler
