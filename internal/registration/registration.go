// Package registration holds the registration form: its values, the rules
// each field must pass, and the outcome of a submission.
package registration

import (
	"errors"
	"net/url"
)

const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldPassword  = "password"
	FieldEmail     = "email"
	FieldMobile    = "mobile"
	FieldAddress   = "address"
)

// Fields lists every form field in display order.
var Fields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPassword,
	FieldMobile,
	FieldAddress,
}

var ErrUnknownField = errors.New("unknown field")

type FormValues struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Address   string `json:"address"`
}

// ValidationErrors maps a field name to its message. A missing key means the
// field is valid.
type ValidationErrors map[string]string

// FromForm reads the six fields out of decoded form data. Missing keys are
// left empty.
func FromForm(form url.Values) FormValues {
	return FormValues{
		FirstName: form.Get(FieldFirstName),
		LastName:  form.Get(FieldLastName),
		Password:  form.Get(FieldPassword),
		Email:     form.Get(FieldEmail),
		Mobile:    form.Get(FieldMobile),
		Address:   form.Get(FieldAddress),
	}
}

func (f *FormValues) field(name string) (*string, error) {
	switch name {
	case FieldFirstName:
		return &f.FirstName, nil
	case FieldLastName:
		return &f.LastName, nil
	case FieldPassword:
		return &f.Password, nil
	case FieldEmail:
		return &f.Email, nil
	case FieldMobile:
		return &f.Mobile, nil
	case FieldAddress:
		return &f.Address, nil
	default:
		return nil, ErrUnknownField
	}
}

func (f FormValues) Get(name string) (string, error) {
	p, err := f.field(name)
	if err != nil {
		return "", err
	}

	return *p, nil
}

func (f *FormValues) Set(name, value string) error {
	p, err := f.field(name)
	if err != nil {
		return err
	}

	*p = value

	return nil
}
