// Package domain provides shared domain-level sentinel errors.
package domain

import "errors"

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden indicates the entity exists but is not accessible to the
// requesting owner.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a uniqueness violation (e.g. duplicate owner email).
var ErrConflict = errors.New("conflict: resource already exists")

// ErrValidation indicates a missing or malformed required field.
var ErrValidation = errors.New("validation failed")

// ErrUnsupportedMedia indicates an uploaded document type outside the
// allow-list.
var ErrUnsupportedMedia = errors.New("unsupported media type")

// ErrPayloadTooLarge indicates an uploaded document over the size limit.
var ErrPayloadTooLarge = errors.New("payload too large")

// ErrStorage indicates a blob store or disk failure.
var ErrStorage = errors.New("storage failure")
