package rpc

import "errors"

// ErrMalformedRequest is reported for lines that are not a valid request.
var ErrMalformedRequest = errors.New("malformed request")
