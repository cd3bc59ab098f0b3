package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when inserting a record whose unique key
	// is already taken.
	ErrAlreadyExists = errors.New("record already exists")
)
