package reservation

import "errors"

var ErrReservationNotFound = errors.New("reservation not found")

var ErrValidation = errors.New("missing or invalid reservation fields")

var ErrSlotConflict = errors.New("time slot already reserved")

var ErrCancellationWindow = errors.New("cancellation window passed")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrInvalidReservationState = errors.New("invalid reservation state")
