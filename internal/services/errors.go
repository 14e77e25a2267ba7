package services

import (
	"fleet-admin/internal/repositories"
)

// Not-found sentinels are shared with the store so handlers can match on either layer.
var (
	ErrAccountNotFound  = repositories.ErrAccountNotFound
	ErrUserNotFound     = repositories.ErrUserNotFound
	ErrCustomerNotFound = repositories.ErrCustomerNotFound
)
