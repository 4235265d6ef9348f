// Package clients provides the instrumented HTTP client used to reach
// FoodData Central.
package clients

import "errors"

// Client errors represent failures in the HTTP client layer.
// They are translated to food errors by the ACL.
var (
	// ErrRequestFailed is returned when no HTTP response was received.
	// The transport error is wrapped for context.
	ErrRequestFailed = errors.New("request failed")
)
