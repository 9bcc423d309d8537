package app

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyPool               = errors.New("pool has no items")
	ErrInsufficientPool        = errors.New("not enough distinct items for card size")
	ErrUnsatisfiableUniqueness = errors.New("could not generate enough unique cards")
	ErrInvalidConfig           = errors.New("invalid engine configuration")
	ErrInvalidTargetOrder      = errors.New("target rounds must be strictly increasing by place")
	ErrInfeasibleSchedule      = errors.New("call sequence exhausted before all places resolved")
	ErrIncompleteSchedule      = errors.New("schedule is missing winner records")
)

// TargetUnreachableError reports which places could not be steered to their
// requested rounds within the attempt budget.
type TargetUnreachableError struct {
	Places   []string
	Attempts int
}

func (e *TargetUnreachableError) Error() string {
	return fmt.Sprintf("no schedule reached the target round for %s after %d attempts",
		strings.Join(e.Places, ", "), e.Attempts)
}
