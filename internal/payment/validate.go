package payment

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tastebite-be/internal/user"
)

var (
	spaceRegex  = regexp.MustCompile(`\s`)
	card16Regex = regexp.MustCompile(`^\d{16}$`)
	expiryRegex = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvcRegex    = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidateCardNumber checks for sixteen digits passing the Luhn checksum.
func ValidateCardNumber(cardNumber string) bool {
	sanitized := spaceRegex.ReplaceAllString(cardNumber, "")
	if !card16Regex.MatchString(sanitized) {
		return false
	}

	sum := 0
	double := false
	for i := len(sanitized) - 1; i >= 0; i-- {
		digit := int(sanitized[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// ValidateExpiry checks MM/YY format and that the date is not in the past.
func ValidateExpiry(expiry string) bool {
	return validateExpiryAt(expiry, time.Now())
}

func validateExpiryAt(expiry string, now time.Time) bool {
	if !expiryRegex.MatchString(expiry) {
		return false
	}

	parts := strings.Split(expiry, "/")
	month, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[1])

	if month < 1 || month > 12 {
		return false
	}

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())

	if year < currentYear || (year == currentYear && month < currentMonth) {
		return false
	}

	return true
}

// ValidateCVC accepts three or four digits.
func ValidateCVC(cvc string) bool {
	return cvcRegex.MatchString(cvc)
}

// FormatCardNumber groups digits in blocks of four for display.
func FormatCardNumber(value string) string {
	sanitized := regexp.MustCompile(`\D`).ReplaceAllString(value, "")
	var groups []string
	for i := 0; i < len(sanitized); i += 4 {
		end := i + 4
		if end > len(sanitized) {
			end = len(sanitized)
		}
		groups = append(groups, sanitized[i:end])
	}
	return strings.Join(groups, " ")
}

// ValidateRequest runs the synchronous form checks for a charge. Failures
// block submission and are recoverable by user correction.
func ValidateRequest(req ChargeRequest) error {
	switch req.Method {
	case MethodCard:
		if req.Card == nil {
			return ErrMissingCard
		}
		if !ValidateCardNumber(req.Card.Number) {
			return ErrInvalidCardNumber
		}
		if !ValidateExpiry(req.Card.Expiry) {
			return ErrInvalidExpiry
		}
		if !ValidateCVC(req.Card.CVC) {
			return ErrInvalidCVC
		}
	case MethodAirtelMoney:
		if !user.ValidatePhone(req.AirtelNum) {
			return ErrInvalidPhone
		}
	case MethodCashOnDeliv:
		// nothing to validate up front
	default:
		return ErrUnknownMethod
	}

	return nil
}
