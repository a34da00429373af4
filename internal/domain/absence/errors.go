package absence

import "errors"

var (
	ErrAbsenceRequestNotFound = errors.New("absence request not found")
	ErrAbsenceAlreadyDecided  = errors.New("absence request already decided")
)
