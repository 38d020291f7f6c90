package errorvalues

import "errors"

var (
	ErrRequestNotFound      = errors.New("request doesn't exist")
	ErrMissionNotFound      = errors.New("mission doesn't exist")
	ErrNotificationNotFound = errors.New("notification doesn't exist")
	ErrBadgeNotFound        = errors.New("badge doesn't exist")
	ErrStockNotFound        = errors.New("no stock for such category")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrInsufficientStock    = errors.New("not enough stock to sell")
)
