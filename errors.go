package rtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry is returned when a rectangle has a minimum coordinate
	// greater than its maximum, or a NaN coordinate.
	ErrInvalidGeometry = textErr("invalid geometry")

	// ErrInvalidConfig is returned by New when the fan-out or the initial
	// boundary cannot be used.
	ErrInvalidConfig = textErr("invalid config")

	// Stop is a special sentinel error that can be returned from a Search
	// callback to end the search early without any error.
	Stop = errors.New("stop")
)

const packageName = "rtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(err error, format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{err}, a...)...)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
