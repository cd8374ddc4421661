package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Sentinels matched with errors.Is against the typed errors below.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrIndex      = errors.New("index out of range")
	ErrDatastore  = errors.New("datastore failure")
)

// ValidationError is returned when a required field is absent on insert, or
// when the key is absent on delete.
type ValidationError struct {
	Entity EntityType
	Fields []string
	Cause  error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: missing required fields: %s", e.Entity, strings.Join(e.Fields, ", "))
}

// Is matches ErrValidation.
func (e ValidationError) Is(target error) bool { return target == ErrValidation }

// Unwrap exposes the per-field causes.
func (e ValidationError) Unwrap() error { return e.Cause }

// NotFoundError is returned when a delete target does not exist.
type NotFoundError struct {
	Entity EntityType
	ID     int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// Is matches ErrNotFound.
func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

// IndexError is returned by index-based container mutations that fall outside
// the current bounds.
type IndexError struct {
	Index int
	Len   int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Len)
}

// Is matches ErrIndex.
func (e IndexError) Is(target error) bool { return target == ErrIndex }

// DatastoreError wraps a failure of the underlying storage backend.
type DatastoreError struct {
	Entity EntityType
	Op     string
	Err    error
}

func (e DatastoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Entity, e.Op, e.Err)
}

// Is matches ErrDatastore.
func (e DatastoreError) Is(target error) bool { return target == ErrDatastore }

// Unwrap returns the backend error.
func (e DatastoreError) Unwrap() error { return e.Err }

// MissingKey builds the ValidationError used when a record without an
// identifier is passed to Delete.
func MissingKey(entity EntityType, field string) error {
	return ValidationError{
		Entity: entity,
		Fields: []string{field},
		Cause:  fmt.Errorf("%s is required", field),
	}
}

type fieldCheck struct {
	fields []string
	errs   *multierror.Error
}

func (c *fieldCheck) require(field string, present bool) {
	if present {
		return
	}
	c.fields = append(c.fields, field)
	c.errs = multierror.Append(c.errs, fmt.Errorf("%s is required", field))
}

func (c *fieldCheck) err(entity EntityType) error {
	if len(c.fields) == 0 {
		return nil
	}
	return ValidationError{Entity: entity, Fields: c.fields, Cause: c.errs.ErrorOrNil()}
}
