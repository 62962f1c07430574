package server

import (
	"regexp"
	"strconv"
	"strings"
)

// An optional sign followed by decimal digits, with single underscores
// allowed between digits ("8_080").
var portSyntax = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*$`)

// InvalidPortError reports a port value that is not an integer.
type InvalidPortError struct {
	Value string
}

func (e *InvalidPortError) Error() string {
	return "Invalid port number: " + e.Value
}

// ParsePort parses a port value. Only the integer syntax is checked here;
// out-of-range values are rejected when the listener is bound.
func ParsePort(value string) (int, error) {
	s := strings.TrimSpace(value)
	if !portSyntax.MatchString(s) {
		return 0, &InvalidPortError{Value: value}
	}
	port, err := strconv.Atoi(strings.ReplaceAll(s, "_", ""))
	if err != nil {
		return 0, &InvalidPortError{Value: value}
	}
	return port, nil
}
