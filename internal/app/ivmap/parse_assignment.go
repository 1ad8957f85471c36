package ivmap

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	ErrInvalidAssignment = errors.New("invalid assignment string")
	ErrInvalidValue      = errors.New("invalid value string")

	assignmentPattern = regexp.MustCompile("^(0|-?[1-9][0-9]*),(0|-?[1-9][0-9]*),(.+)$")
)

type Assignment struct {
	Begin, End int
	Value      byte
}

func (a Assignment) String() string {
	return fmt.Sprintf("%d, %d, %c", a.Begin, a.End, a.Value)
}

// ParseValue parses a single printable ASCII character.
func ParseValue(str string) (byte, error) {
	if len(str) != 1 || str[0] < '!' || str[0] > '~' {
		return 0, ErrInvalidValue
	}
	return str[0], nil
}

// ParseAssignment parses "<begin>,<end>,<value>". The range is not required
// to be ordered.
func ParseAssignment(str string) (Assignment, error) {
	parts := assignmentPattern.FindStringSubmatch(str)
	if len(parts) != 4 {
		return Assignment{}, ErrInvalidAssignment
	}

	begin, err := strconv.Atoi(parts[1])
	if err != nil {
		return Assignment{}, fmt.Errorf("error parsing begin: %w", err)
	}
	end, err := strconv.Atoi(parts[2])
	if err != nil {
		return Assignment{}, fmt.Errorf("error parsing end: %w", err)
	}
	value, err := ParseValue(parts[3])
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{Begin: begin, End: end, Value: value}, nil
}
