package model

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput = errors.New("missing embed code")
	ErrNotFound     = errors.New("embed code not found in authorization data")
)

// MetadataError is an error block returned by the metadata API.
type MetadataError struct {
	Code    ProviderCode `json:"code"`
	Message string       `json:"message"`
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("metadata error %s: %s", e.Code, e.Message)
}
