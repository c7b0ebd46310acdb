// Package controller holds what the per-entity data access packages share.
package controller

import "errors"

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")
