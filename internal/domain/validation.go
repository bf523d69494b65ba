package domain

import (
	"regexp"
	"strconv"
)

// Format rules for externally supplied fields. Lookups by these values must
// always use exact-value equality against the store, never caller-supplied
// query structure.
var (
	fullNameRegex  = regexp.MustCompile(`^[a-zA-Z\s]{3,50}$`)
	idNumberRegex  = regexp.MustCompile(`^[0-9]{13}$`)
	accountRegex   = regexp.MustCompile(`^[0-9]{10,12}$`)
	usernameRegex  = regexp.MustCompile(`^[a-zA-Z0-9_.]{3,20}$`)
	passwordRegex  = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
	payeeNameRegex = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	ibanRegex      = regexp.MustCompile(`^[A-Z0-9]{15,34}$`)
	swiftRegex     = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	amountRegex    = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

	lowerRegex   = regexp.MustCompile(`[a-z]`)
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	digitRegex   = regexp.MustCompile(`\d`)
	specialRegex = regexp.MustCompile(`[@$!%*?&]`)
)

const MaxPaymentAmount = 999999999.99

var supportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
	"ZAR": true,
	"JPY": true,
}

func ValidateFullName(v string) *ValidationError {
	if !fullNameRegex.MatchString(v) {
		return &ValidationError{Field: "fullName", Rule: "must contain only letters and spaces (3-50 characters)"}
	}
	return nil
}

func ValidateIDNumber(v string) *ValidationError {
	if !idNumberRegex.MatchString(v) {
		return &ValidationError{Field: "idNumber", Rule: "must be 13 digits"}
	}
	return nil
}

func ValidateAccountNumber(v string) *ValidationError {
	if !accountRegex.MatchString(v) {
		return &ValidationError{Field: "accountNumber", Rule: "must be 10-12 digits"}
	}
	return nil
}

func ValidateUsername(v string) *ValidationError {
	if !usernameRegex.MatchString(v) {
		return &ValidationError{Field: "username", Rule: "must be alphanumeric with dots and underscores (3-20 characters)"}
	}
	return nil
}

func ValidatePassword(v string) *ValidationError {
	if !passwordRegex.MatchString(v) ||
		!lowerRegex.MatchString(v) ||
		!upperRegex.MatchString(v) ||
		!digitRegex.MatchString(v) ||
		!specialRegex.MatchString(v) {
		return &ValidationError{Field: "password", Rule: "must be at least 8 characters with uppercase, lowercase, number and special character"}
	}
	return nil
}

func ValidateAmount(v float64) *ValidationError {
	if v <= 0 {
		return &ValidationError{Field: "amount", Rule: "must be positive"}
	}
	if v > MaxPaymentAmount {
		return &ValidationError{Field: "amount", Rule: "cannot exceed 999,999,999.99"}
	}
	// The decimal-places rule is lexical: the shortest round-tripping form of
	// the value must carry at most two fractional digits. Comparing v*100
	// against its rounding breaks near the top of the range, where one cent is
	// below the float64 representation error.
	if !amountRegex.MatchString(strconv.FormatFloat(v, 'f', -1, 64)) {
		return &ValidationError{Field: "amount", Rule: "at most two decimal places"}
	}
	return nil
}

func ValidateCurrency(v string) *ValidationError {
	if !supportedCurrencies[v] {
		return &ValidationError{Field: "currency", Rule: "must be one of USD, EUR, GBP, ZAR, JPY"}
	}
	return nil
}

func ValidatePayeeName(v string) *ValidationError {
	if !payeeNameRegex.MatchString(v) {
		return &ValidationError{Field: "payeeName", Rule: "must contain only letters and spaces (2-50 characters)"}
	}
	return nil
}

func ValidatePayeeAccount(v string) *ValidationError {
	if !ibanRegex.MatchString(v) {
		return &ValidationError{Field: "payeeAccountNumber", Rule: "invalid IBAN format (15-34 alphanumeric characters)"}
	}
	return nil
}

func ValidateSwiftCode(v string) *ValidationError {
	if !swiftRegex.MatchString(v) {
		return &ValidationError{Field: "swiftCode", Rule: "invalid SWIFT/BIC code format"}
	}
	return nil
}
