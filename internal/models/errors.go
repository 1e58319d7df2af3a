package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAPIKeyNotUnique = errors.New("the API key is already in use")

	// Expense invariants. These are enforced a second time by the
	// validation layer, which reports all violations at once. The
	// database hooks are the last line of defense.
	ErrAmountNotPositive  = errors.New("the amount must be greater than zero")
	ErrDescriptionTooLong = errors.New("the description must be 255 characters or less")
	ErrCategoryInvalid    = errors.New("the category is not a valid category")
	ErrDateNotSet         = errors.New("the date must be set")
)
