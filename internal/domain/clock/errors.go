package clock

import "errors"

// ErrInvalidTime is returned by Parse for any string that is not "H:MM AM|PM".
var ErrInvalidTime = errors.New("invalid time of day")
