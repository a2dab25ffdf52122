package cache

import "errors"

var ErrNoKey = errors.New("cache: key not found")
