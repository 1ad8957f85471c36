package ivmap

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/akmistry/intervalmap/internal/exercise"
)

var (
	ErrInvalidWindow = errors.New("invalid window string")

	windowPattern = regexp.MustCompile("^(0|-?[1-9][0-9]*):(0|-?[1-9][0-9]*)$")
)

// ParseWindow parses "<min>:<max>" into the half-open key window [min, max).
// The window may hold at most exercise.MaxWindow keys.
func ParseWindow(str string) (min, max int, err error) {
	parts := windowPattern.FindStringSubmatch(str)
	if len(parts) != 3 {
		return 0, 0, ErrInvalidWindow
	}

	min, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, ErrInvalidWindow
	}
	max, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, ErrInvalidWindow
	}
	if min >= max {
		return 0, 0, ErrInvalidWindow
	} else if span := max - min; span <= 0 || span > exercise.MaxWindow {
		return 0, 0, ErrInvalidWindow
	}
	return min, max, nil
}
