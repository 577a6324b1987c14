package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validValues() FormValues {
	return FormValues{
		FirstName: "Alicia",
		LastName:  "Smith",
		Password:  "abcdef",
		Email:     "a@b.com",
		Mobile:    "1234567890",
		Address:   "1 Main St",
	}
}

func TestValidate_ValidForm(t *testing.T) {
	errs, ok := Validate(validValues())

	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestValidate_EmptyForm(t *testing.T) {
	errs, ok := Validate(FormValues{})

	assert.False(t, ok)
	assert.Equal(t, ValidationErrors{
		FieldFirstName: MsgFirstNameLength,
		FieldLastName:  MsgLastNameBlank,
		FieldPassword:  MsgPasswordLength,
		FieldEmail:     MsgEmailBlank,
		FieldMobile:    MsgMobileFormat,
		FieldAddress:   MsgAddressBlank,
	}, errs)
}

func TestValidate_SingleField(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(v *FormValues)
		field   string
		wantMsg string
	}{
		{
			name:    "first name with digits",
			modify:  func(v *FormValues) { v.FirstName = "Alice1" },
			field:   FieldFirstName,
			wantMsg: MsgFirstNameAlpha,
		},
		{
			name:    "first name too short",
			modify:  func(v *FormValues) { v.FirstName = "Al" },
			field:   FieldFirstName,
			wantMsg: MsgFirstNameLength,
		},
		{
			name:    "first name short and not alphabetic reports length",
			modify:  func(v *FormValues) { v.FirstName = "A1" },
			field:   FieldFirstName,
			wantMsg: MsgFirstNameLength,
		},
		{
			name:    "first name with space",
			modify:  func(v *FormValues) { v.FirstName = "Ali Cia" },
			field:   FieldFirstName,
			wantMsg: MsgFirstNameAlpha,
		},
		{
			name:    "first name with accented letter",
			modify:  func(v *FormValues) { v.FirstName = "Émilie" },
			field:   FieldFirstName,
			wantMsg: MsgFirstNameAlpha,
		},
		{
			name:    "first name of emoji",
			modify:  func(v *FormValues) { v.FirstName = "😀😀😀" },
			field:   FieldFirstName,
			wantMsg: MsgFirstNameAlpha,
		},
		{
			name:    "last name byte order mark only",
			modify:  func(v *FormValues) { v.LastName = "\ufeff" },
			field:   FieldLastName,
			wantMsg: MsgLastNameBlank,
		},
		{
			name:    "last name blank",
			modify:  func(v *FormValues) { v.LastName = "   " },
			field:   FieldLastName,
			wantMsg: MsgLastNameBlank,
		},
		{
			name:    "password too short",
			modify:  func(v *FormValues) { v.Password = "abcde" },
			field:   FieldPassword,
			wantMsg: MsgPasswordLength,
		},
		{
			name:    "email empty",
			modify:  func(v *FormValues) { v.Email = "" },
			field:   FieldEmail,
			wantMsg: MsgEmailBlank,
		},
		{
			name:    "email whitespace only",
			modify:  func(v *FormValues) { v.Email = "  " },
			field:   FieldEmail,
			wantMsg: MsgEmailBlank,
		},
		{
			name:    "email without at sign",
			modify:  func(v *FormValues) { v.Email = "bad-email" },
			field:   FieldEmail,
			wantMsg: MsgEmailFormat,
		},
		{
			name:    "email without dot in domain",
			modify:  func(v *FormValues) { v.Email = "a@b" },
			field:   FieldEmail,
			wantMsg: MsgEmailFormat,
		},
		{
			name:    "email with space",
			modify:  func(v *FormValues) { v.Email = "a b@c.com" },
			field:   FieldEmail,
			wantMsg: MsgEmailFormat,
		},
		{
			name:    "email with vertical tab",
			modify:  func(v *FormValues) { v.Email = "a\vb@c.com" },
			field:   FieldEmail,
			wantMsg: MsgEmailFormat,
		},
		{
			name:    "email with no-break space",
			modify:  func(v *FormValues) { v.Email = "a\u00a0b@c.com" },
			field:   FieldEmail,
			wantMsg: MsgEmailFormat,
		},
		{
			name:    "email with em space in domain",
			modify:  func(v *FormValues) { v.Email = "a@b.c\u2003om" },
			field:   FieldEmail,
			wantMsg: MsgEmailFormat,
		},
		{
			name:    "email with line separator",
			modify:  func(v *FormValues) { v.Email = "a@b\u2028.com" },
			field:   FieldEmail,
			wantMsg: MsgEmailFormat,
		},
		{
			name:    "mobile too short",
			modify:  func(v *FormValues) { v.Mobile = "12345" },
			field:   FieldMobile,
			wantMsg: MsgMobileFormat,
		},
		{
			name:    "mobile too long",
			modify:  func(v *FormValues) { v.Mobile = "12345678901" },
			field:   FieldMobile,
			wantMsg: MsgMobileFormat,
		},
		{
			name:    "mobile with letter",
			modify:  func(v *FormValues) { v.Mobile = "123456789a" },
			field:   FieldMobile,
			wantMsg: MsgMobileFormat,
		},
		{
			name:    "address blank",
			modify:  func(v *FormValues) { v.Address = "\n\t " },
			field:   FieldAddress,
			wantMsg: MsgAddressBlank,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values := validValues()
			tc.modify(&values)

			errs, ok := Validate(values)

			assert.False(t, ok)
			assert.Equal(t, ValidationErrors{tc.field: tc.wantMsg}, errs)
		})
	}
}

func TestValidate_AcceptedEdgeValues(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(v *FormValues)
	}{
		{name: "password of spaces", modify: func(v *FormValues) { v.Password = "      " }},
		{name: "short email domain", modify: func(v *FormValues) { v.Email = "a@b.c" }},
		{name: "mobile of zeros", modify: func(v *FormValues) { v.Mobile = "0000000000" }},
		{name: "last name with padding", modify: func(v *FormValues) { v.LastName = "  Smith " }},
		{name: "multi-line address", modify: func(v *FormValues) { v.Address = "1 Main St\nSpringfield" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values := validValues()
			tc.modify(&values)

			errs, ok := Validate(values)

			assert.True(t, ok)
			assert.Empty(t, errs)
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	values := FormValues{FirstName: "Al", Email: "bad-email", Mobile: "12345"}

	first, firstOK := Validate(values)
	second, secondOK := Validate(values)

	assert.Equal(t, first, second)
	assert.Equal(t, firstOK, secondOK)
	assert.Equal(t, FormValues{FirstName: "Al", Email: "bad-email", Mobile: "12345"}, values)
}
