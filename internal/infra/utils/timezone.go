package utils

import (
	"fmt"
	"time"
)

// ValidateTimezone validates that the given timezone string is a valid IANA timezone name
func ValidateTimezone(timezone string) error {
	_, err := LoadLocation(timezone)
	return err
}

// LoadLocation resolves an IANA timezone name, rejecting the empty name that
// time.LoadLocation would silently treat as UTC.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return nil, fmt.Errorf("timezone cannot be empty")
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w", timezone, err)
	}

	return location, nil
}
