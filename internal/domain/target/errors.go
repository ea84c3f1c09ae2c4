package target

import "errors"

var (
	ErrTargetNotFound = errors.New("sales target not found")
)
