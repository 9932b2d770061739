package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicatePurchase indicates the buyer already owns a purchase of this lead
	ErrDuplicatePurchase = errors.New("duplicate purchase")

	// ErrNegativeBalance indicates an update would take an account balance below zero
	ErrNegativeBalance = errors.New("negative balance")
)
