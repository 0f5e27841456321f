package repository

import "errors"

var ErrInvalidWindowData = errors.New("invalid window state data")
