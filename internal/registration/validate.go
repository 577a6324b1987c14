package registration

import (
	"regexp"

	"github.com/sushihentaime/registration-form/internal/validator"
)

const (
	MinFirstNameChars = 6
	MinPasswordChars  = 6

	MsgFirstNameLength = "Name must be at least 6 characters long."
	MsgFirstNameAlpha  = "Name must contain only alphabetic characters."
	MsgLastNameBlank   = "Last Name is required and cannot be empty."
	MsgPasswordLength  = "Password must be at least 6 characters long."
	MsgEmailBlank      = "Email is required."
	MsgEmailFormat     = "Please enter a valid email address (e.g., name@domain.com)."
	MsgMobileFormat    = "Mobile number must contain exactly 10 digits."
	MsgAddressBlank    = "Address is required and cannot be empty."
)

var (
	NameRX   = regexp.MustCompile(`^[A-Za-z]+$`)
	// The class excludes the same whitespace as validator.IsSpace, not just
	// RE2's ASCII \s.
	EmailRX  = regexp.MustCompile(`^[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]+@[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]+\.[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]+$`)
	MobileRX = regexp.MustCompile(`^\d{10}$`)
)

// Validate runs every field rule against values and collects one message per
// failing field. The form is valid only when no rule fails.
func Validate(values FormValues) (ValidationErrors, bool) {
	v := validator.New()

	if !validator.MinChars(values.FirstName, MinFirstNameChars) {
		v.AddError(FieldFirstName, MsgFirstNameLength)
	} else {
		v.Check(validator.Matches(values.FirstName, NameRX), FieldFirstName, MsgFirstNameAlpha)
	}

	v.Check(validator.NotBlank(values.LastName), FieldLastName, MsgLastNameBlank)

	v.Check(validator.MinChars(values.Password, MinPasswordChars), FieldPassword, MsgPasswordLength)

	if !validator.NotBlank(values.Email) {
		v.AddError(FieldEmail, MsgEmailBlank)
	} else {
		v.Check(validator.Matches(values.Email, EmailRX), FieldEmail, MsgEmailFormat)
	}

	v.Check(validator.Matches(values.Mobile, MobileRX), FieldMobile, MsgMobileFormat)

	v.Check(validator.NotBlank(values.Address), FieldAddress, MsgAddressBlank)

	return ValidationErrors(v.Errors), v.Valid()
}
