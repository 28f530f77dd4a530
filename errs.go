package yamlnav

import "errors"

var (
	ErrPath = errors.New("path error")
)
