package token

import "errors"

var (
	ErrUnterminated = errors.New("unterminated")
	ErrNotFlow      = errors.New("not a flow collection")
)
