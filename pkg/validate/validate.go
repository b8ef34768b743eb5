// Package validate holds the input validation rules for patient-facing
// identifiers. The Egyptian national ID encodes the century, birth date,
// governorate sequence, and gender: XYYMMDDCCCCCCG with X = 2 for the 1900s
// and 3 for the 2000s.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNationalIDFormat  = errors.New("national ID must be exactly 14 digits")
	ErrNationalIDCentury = errors.New("invalid century digit (must be 2 or 3)")
	ErrNationalIDDate    = errors.New("invalid birth date in national ID")
	ErrBirthDateInFuture = errors.New("birth date cannot be in the future")
	ErrPhoneFormat       = errors.New("phone must be 11 digits starting with 01")
	ErrEmailFormat       = errors.New("invalid email format")
)

var (
	nationalIDRe = regexp.MustCompile(`^\d{14}$`)
	phoneRe      = regexp.MustCompile(`^01[0-9]{9}$`)
	emailRe      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// normalizeDigits strips the spaces and dashes people type into IDs and
// phone numbers.
func normalizeDigits(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(s)
}

// NationalID checks the full format: 14 digits, a valid century marker, and
// an embedded birth date that is a real, non-future calendar date.
func NationalID(nationalID string) error {
	id := normalizeDigits(nationalID)

	if !nationalIDRe.MatchString(id) {
		return ErrNationalIDFormat
	}

	if _, err := BirthDateFromNationalID(id); err != nil {
		return err
	}

	return nil
}

// BirthDateFromNationalID decodes the YYMMDD birth date embedded in a
// 14-digit national ID.
func BirthDateFromNationalID(nationalID string) (time.Time, error) {
	id := normalizeDigits(nationalID)
	if !nationalIDRe.MatchString(id) {
		return time.Time{}, ErrNationalIDFormat
	}

	var centuryBase int
	switch id[0] {
	case '2':
		centuryBase = 1900
	case '3':
		centuryBase = 2000
	default:
		return time.Time{}, ErrNationalIDCentury
	}

	year, _ := strconv.Atoi(id[1:3])
	month, _ := strconv.Atoi(id[3:5])
	day, _ := strconv.Atoi(id[5:7])

	birth := time.Date(centuryBase+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components, so round-trip the parts
	// to reject dates like month 13 or February 30.
	if birth.Year() != centuryBase+year || int(birth.Month()) != month || birth.Day() != day {
		return time.Time{}, ErrNationalIDDate
	}

	if birth.After(time.Now()) {
		return time.Time{}, ErrBirthDateInFuture
	}

	return birth, nil
}

// Phone checks Egyptian mobile numbers: 11 digits with an 01 prefix.
func Phone(phone string) error {
	if !phoneRe.MatchString(normalizeDigits(phone)) {
		return ErrPhoneFormat
	}
	return nil
}

func Email(email string) error {
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: %q", ErrEmailFormat, email)
	}
	return nil
}
