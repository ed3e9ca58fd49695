// Package errors provides sentinel errors for product storage operations.
package errors

import "errors"

var ErrProductNotFound = errors.New("product not found")
