package overtime

import "errors"

var (
	ErrInvalidWindow   = errors.New("overtime window end must not be before its start")
	ErrInvalidRounding = errors.New("rounding must be one of: nearest, floor, ceil")
)
