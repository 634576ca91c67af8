package errors

import (
	"fmt"
)

var (
	ErrNotFound        = fmt.Errorf("not found")
	ErrForbidden       = fmt.Errorf("forbidden")
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrInvalidFormat   = fmt.Errorf("invalid format")
	ErrInvalidChecksum = fmt.Errorf("invalid checksum")
	ErrDuplicate       = fmt.Errorf("duplicate entry")
	ErrRetroactiveDate = fmt.Errorf("retroactive date")
	ErrTooFarInFuture  = fmt.Errorf("date too far in the future")
	ErrSlotTaken       = fmt.Errorf("slot already reserved")
)
