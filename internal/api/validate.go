package api

import (
	"fmt"
	"regexp"
	"strings"
)

// Client-side checks run before a request is issued. They produce
// validation-kind errors so the UI can render inline messages without a
// round trip. Anything the server also checks stays server-authoritative;
// these only catch the obviously malformed.

var (
	idPattern     = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{1,63}$`)
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$`)
)

func validateID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return validationError(field + " is required")
	}
	if !idPattern.MatchString(id) {
		return validationError(fmt.Sprintf("%s %q is not a valid identifier", field, id))
	}
	return nil
}

func validateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationError(field + " is required")
	}
	return nil
}

func validateSemver(field, version string) error {
	if strings.TrimSpace(version) == "" {
		return validationError(field + " is required")
	}
	if !semverPattern.MatchString(version) {
		return validationError(fmt.Sprintf("%s %q is not a valid semantic version", field, version))
	}
	return nil
}

func validateSeats(seats int) error {
	if seats <= 0 {
		return validationError("seats must be greater than zero")
	}
	return nil
}
