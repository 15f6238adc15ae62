package archive

import "errors"

// ErrNotFound is returned when no archived hand has the id
var ErrNotFound = errors.New("hand not found")

// ErrHandNotFinished is returned when saving a hand that is still in play
var ErrHandNotFinished = errors.New("only finished hands can be archived")

// ErrInvalidLimit is returned when listing a negative number of hands
var ErrInvalidLimit = errors.New("limit must not be negative")
