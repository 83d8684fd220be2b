package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrAccountNameNotUnique   = errors.New("the account name must be unique for the budget")
	ErrAccountKindInvalid     = errors.New("the account kind must be one of 'cash' or 'credit'")
	ErrBudgetCurrencyInvalid  = errors.New("the currency must be an ISO 4217 currency code like 'EUR'")
	ErrTransactionDateInvalid = errors.New("the transaction date must be in YYYY-MM-DD format")
	ErrBudgetIDRequired       = errors.New("the budget ID must be set")
)
