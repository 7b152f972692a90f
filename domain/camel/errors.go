package camel

import "errors"

var (
	ErrMalformedLine = errors.New("malformed hand line")
	ErrUnknownCard   = errors.New("unknown card")
	ErrInvalidBet    = errors.New("invalid bet")
)
