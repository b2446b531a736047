package domain

import "errors"

var (
	ErrInvalidAmount      = errors.New("invalid final amount")
	ErrInvalidPointsUsed  = errors.New("invalid points used")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInsufficientPoints = errors.New("insufficient points")
)
