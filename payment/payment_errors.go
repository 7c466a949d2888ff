package payment

import "errors"

var ErrPaymentNotFound = errors.New("payment not found")

var ErrInvalidPaymentType = errors.New("invalid payment type")

var ErrAlreadySettled = errors.New("reservation is already settled")
