package common

import "errors"

var ErrNoToken = errors.New("no token")
var ErrMalformedToken = errors.New("malformed token")
var ErrInvalidInput = errors.New("bad input")
