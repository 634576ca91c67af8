// Package validate implements the Brazilian document validators used across
// the registry: CPF check digits, phone numbers with DDD, and vehicle plates
// in the legacy and Mercosul formats. Validators return the normalized
// (digits-only / uppercase) value; formatters are best-effort and never fail.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
)

var (
	nonDigits     = regexp.MustCompile(`\D`)
	plateLegacy   = regexp.MustCompile(`^[A-Z]{3}\d{4}$`)
	plateMercosul = regexp.MustCompile(`^[A-Z]{3}\d[A-Z]\d{2}$`)
)

// CPF validates a CPF, accepting formatted or digits-only input.
// It returns the normalized 11-digit string.
func CPF(value string) (string, error) {
	cpf := nonDigits.ReplaceAllString(value, "")

	if len(cpf) != 11 {
		return "", fmt.Errorf("%w: CPF must have exactly 11 digits", e.ErrInvalidFormat)
	}

	// All digits equal is arithmetically valid but not a real CPF.
	if cpf == strings.Repeat(string(cpf[0]), 11) {
		return "", fmt.Errorf("%w: invalid CPF", e.ErrInvalidChecksum)
	}

	digits := make([]int, 11)
	for i, r := range cpf {
		digits[i] = int(r - '0')
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	if digits[9] != checkDigit(sum) {
		return "", fmt.Errorf("%w: invalid CPF", e.ErrInvalidChecksum)
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	if digits[10] != checkDigit(sum) {
		return "", fmt.Errorf("%w: invalid CPF", e.ErrInvalidChecksum)
	}

	return cpf, nil
}

func checkDigit(sum int) int {
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// FormatCPF renders a CPF as XXX.XXX.XXX-XX. Input that does not strip to
// 11 digits is returned unchanged.
func FormatCPF(value string) string {
	cpf := nonDigits.ReplaceAllString(value, "")
	if len(cpf) != 11 {
		return value
	}
	return fmt.Sprintf("%s.%s.%s-%s", cpf[:3], cpf[3:6], cpf[6:9], cpf[9:])
}

// Phone validates a Brazilian phone number (10 digits landline, 11 digits
// mobile with the leading 9) and returns the normalized digit string.
func Phone(value string) (string, error) {
	phone := nonDigits.ReplaceAllString(value, "")

	if len(phone) != 10 && len(phone) != 11 {
		return "", fmt.Errorf("%w: phone must have 10 or 11 digits", e.ErrInvalidFormat)
	}

	if len(phone) == 11 && phone[2] != '9' {
		return "", fmt.Errorf("%w: 11-digit phones must have 9 as the third digit", e.ErrInvalidFormat)
	}

	ddd, err := strconv.Atoi(phone[:2])
	if err != nil || ddd < 11 || ddd > 99 {
		return "", fmt.Errorf("%w: DDD must be between 11 and 99", e.ErrInvalidFormat)
	}

	return phone, nil
}

// FormatPhone renders a phone as (XX) XXXXX-XXXX or (XX) XXXX-XXXX.
// Anything else is returned unchanged.
func FormatPhone(value string) string {
	phone := nonDigits.ReplaceAllString(value, "")
	switch len(phone) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", phone[:2], phone[2:7], phone[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", phone[:2], phone[2:6], phone[6:])
	default:
		return value
	}
}

// Plate validates a vehicle plate in the legacy (ABC1234) or Mercosul
// (ABC1D23) format and returns it normalized: uppercase, no separators.
func Plate(value string) (string, error) {
	placa := strings.ToUpper(strings.TrimSpace(value))
	placa = strings.ReplaceAll(placa, "-", "")
	placa = strings.ReplaceAll(placa, " ", "")

	if !plateLegacy.MatchString(placa) && !plateMercosul.MatchString(placa) {
		return "", fmt.Errorf("%w: plate must match ABC1234 or ABC1D23", e.ErrInvalidFormat)
	}
	return placa, nil
}
