package earning

import "errors"

var ErrEarningNotFound = errors.New("earning not found")
