package document

import (
	"errors"
	"fmt"
)

var (
	ErrAlias     = errors.New("alias error")
	ErrUndefined = fmt.Errorf("%w: undefined anchor", ErrAlias)
	ErrRef       = errors.New("invalid node ref")
)
