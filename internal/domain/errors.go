package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("pain area not found")
	// ErrDuplicateID 同一会话中出现重复 id
	ErrDuplicateID = errors.New("duplicate pain area id")
)

// OutOfRangeError is returned when an intensity falls outside [MinIntensity, MaxIntensity].
type OutOfRangeError struct {
	Value int
	Min   int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("intensity %d out of range [%d,%d]", e.Value, e.Min, e.Max)
}

// ValidateIntensity 校验疼痛强度（不做截断）
func ValidateIntensity(v int) error {
	if v < MinIntensity || v > MaxIntensity {
		return &OutOfRangeError{Value: v, Min: MinIntensity, Max: MaxIntensity}
	}
	return nil
}
