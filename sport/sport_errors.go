package sport

import "errors"

var ErrSportNotFound = errors.New("sport not found")

var ErrSportDisabled = errors.New("sport is disabled")

var ErrValidation = errors.New("invalid sport fields")
