package entity

import (
	"errors"
)

var (
	ErrDataNotFound     = errors.New("data not found")
	ErrConflictingData  = errors.New("data conflicts with existing data in unique column")
	ErrInvalidData      = errors.New("invalid data")
	ErrConfigPathNotSet = errors.New("CONFIG_PATH not set and -config flag not provided")

	ErrItemNotFound         = errors.New("catalog item not found")
	ErrItemUnavailable      = errors.New("catalog item is out of stock")
	ErrBelowMinimumOrder    = errors.New("quantity is below the item minimum order")
	ErrLineNotFound         = errors.New("order line not found")
	ErrInvalidContainerSize = errors.New("container size is not permitted for this item")

	ErrDraftNotFound   = errors.New("order draft not found or expired")
	ErrDraftSubmitted  = errors.New("order draft is already submitted")
	ErrIncompleteDraft = errors.New("order draft is missing required fields")
)
