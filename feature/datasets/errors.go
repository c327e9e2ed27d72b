package datasets

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a dataset does not exist.
	ErrNotFound = errors.New("dataset not found")
	// ErrInvalidName is returned for filenames that are unsafe or not CSV.
	ErrInvalidName = errors.New("invalid dataset filename")
	// ErrInvalidCSV is returned when an upload cannot be parsed.
	ErrInvalidCSV = errors.New("invalid csv")
)

// NotFoundError carries the closest known filenames.
type NotFoundError struct {
	Filename    string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("dataset %q not found", e.Filename)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidateName checks that name is a plain .csv filename.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case strings.ContainsAny(name, `/\`), strings.Contains(name, ".."):
		return fmt.Errorf("%w: %q must not contain path elements", ErrInvalidName, name)
	case !strings.EqualFold(strings.TrimPrefix(extension(name), "."), "csv"):
		return fmt.Errorf("%w: %q is not a .csv file", ErrInvalidName, name)
	}
	return nil
}

func extension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}
