package domain

import "errors"

var (
	ErrEmptyName         = errors.New("item name is empty")
	ErrNotFound          = errors.New("item not found")
	ErrNoProductResolved = errors.New("no product resolved")
	ErrNoProductDetails  = errors.New("no product details")
	ErrUnrecognized      = errors.New("command not recognized")

	// Prompt signals: a rule matched but its slot came out empty.
	ErrMissingItemName       = errors.New("missing item name")
	ErrMissingRemoveTarget   = errors.New("missing item to remove")
	ErrMissingSearchTerm     = errors.New("missing search term")
	ErrMissingNavigateTarget = errors.New("missing navigation target")
)
