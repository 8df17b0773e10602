// Package validation contains the logic for decoding and validating
// request data.
//
// It uses the `validator` library to enforce rules (like minimum
// lengths or value ranges) defined in struct tags and extracts
// validation errors into a field -> messages mapping the client can
// understand
package validation
