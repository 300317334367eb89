package checkout

import (
	"strings"

	"wanderbook/models"
)

// Field validation rules. Each rule is a total function over its input with
// no I/O; step validators run the relevant subset and collect every failure
// in form-field order.

// RequireNonEmpty rejects blank values.
func RequireNonEmpty(value string) FieldErrorKind {
	if strings.TrimSpace(value) == "" {
		return Missing
	}
	return Valid
}

// RequireEmail accepts a non-empty local part, "@", and a domain containing
// a dot, with no embedded whitespace.
func RequireEmail(value string) FieldErrorKind {
	v := strings.TrimSpace(value)
	if v == "" {
		return Missing
	}
	if strings.ContainsAny(v, " \t") {
		return InvalidFormat
	}
	at := strings.Index(v, "@")
	if at <= 0 || at != strings.LastIndex(v, "@") {
		return InvalidFormat
	}
	domain := v[at+1:]
	if domain == "" || !strings.Contains(domain, ".") ||
		strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return InvalidFormat
	}
	return Valid
}

// RequirePhone accepts an optional leading "+" followed by 2-15 digits,
// after stripping spaces, dashes and parentheses.
func RequirePhone(value string) FieldErrorKind {
	v := strings.TrimSpace(value)
	if v == "" {
		return Missing
	}
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, v)
	stripped = strings.TrimPrefix(stripped, "+")
	if len(stripped) < 2 || len(stripped) > 15 {
		return InvalidFormat
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return InvalidFormat
		}
	}
	return Valid
}

// RequireCardNumber accepts exactly 16 digits after stripping spaces.
func RequireCardNumber(value string) FieldErrorKind {
	v := strings.ReplaceAll(strings.TrimSpace(value), " ", "")
	if v == "" {
		return Missing
	}
	if len(v) != 16 {
		return InvalidLength
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return InvalidLength
		}
	}
	return Valid
}

// RequireCVC accepts exactly 3 digits.
func RequireCVC(value string) FieldErrorKind {
	v := strings.TrimSpace(value)
	if v == "" {
		return Missing
	}
	if len(v) != 3 {
		return InvalidLength
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return InvalidLength
		}
	}
	return Valid
}

// RequireExpiry accepts "MM/YY" with month 01-12.
func RequireExpiry(value string) FieldErrorKind {
	v := strings.TrimSpace(value)
	if v == "" {
		return Missing
	}
	if len(v) != 5 || v[2] != '/' {
		return InvalidFormat
	}
	mm, yy := v[:2], v[3:]
	for _, r := range mm + yy {
		if r < '0' || r > '9' {
			return InvalidFormat
		}
	}
	if mm < "01" || mm > "12" {
		return InvalidFormat
	}
	return Valid
}

// RequireAgreement rejects an unchecked terms box.
func RequireAgreement(flag bool) FieldErrorKind {
	if !flag {
		return NotAgreed
	}
	return Valid
}

// ValidateCustomerDetails checks the customer-details form and returns all
// failures in form order. Country carries no validation.
func ValidateCustomerDetails(in models.CustomerDetailsInput) []FieldError {
	var errs []FieldError
	collect := func(field string, kind FieldErrorKind) {
		if kind != Valid {
			errs = append(errs, FieldError{Field: field, Kind: kind})
		}
	}
	collect("firstName", RequireNonEmpty(in.FirstName))
	collect("lastName", RequireNonEmpty(in.LastName))
	collect("email", RequireEmail(in.Email))
	collect("address", RequireNonEmpty(in.Address))
	collect("city", RequireNonEmpty(in.City))
	collect("postalCode", RequireNonEmpty(in.PostalCode))
	collect("phone", RequirePhone(in.Phone))
	return errs
}

// ValidatePaymentCard checks the card fields of the payment form and
// returns all failures in form order. The terms agreement is gated
// separately, before these rules run.
func ValidatePaymentCard(in models.PaymentInput) []FieldError {
	var errs []FieldError
	collect := func(field string, kind FieldErrorKind) {
		if kind != Valid {
			errs = append(errs, FieldError{Field: field, Kind: kind})
		}
	}
	collect("cardNumber", RequireCardNumber(in.CardNumber))
	collect("cardHolder", RequireNonEmpty(in.CardHolder))
	collect("expiry", RequireExpiry(in.Expiry))
	collect("cvc", RequireCVC(in.CVC))
	return errs
}
