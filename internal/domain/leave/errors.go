package leave

import "errors"

var (
	ErrNotFound        = errors.New("leave request not found")
	ErrAlreadyReviewed = errors.New("leave request already reviewed")
)
