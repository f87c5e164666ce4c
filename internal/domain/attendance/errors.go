package attendance

import "errors"

var ErrNotFound = errors.New("attendance record not found")
