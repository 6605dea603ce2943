package domain

import "errors"

var (
	ErrMissingListingKey = errors.New("listing key is missing")
	ErrListingNotFound   = errors.New("listing not found")
	ErrQueryFailed       = errors.New("listing query failed")
	ErrInvalidRecord     = errors.New("invalid feed record")
)
