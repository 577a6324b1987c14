package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/sushihentaime/registration-form/internal/registration"
)

//go:embed templates
var templateFS embed.FS

const pageTitle = "Registration Form"

type control struct {
	ID          string
	Label       string
	Type        string
	Placeholder string
	Rows        int
	MaxLength   int
}

var controls = []control{
	{ID: registration.FieldFirstName, Label: "First Name", Type: "text", Placeholder: "e.g., Alice (Min 6 letters)"},
	{ID: registration.FieldLastName, Label: "Last Name", Type: "text", Placeholder: "e.g., Johnson"},
	{ID: registration.FieldEmail, Label: "E-mail Address", Type: "email", Placeholder: "e.g., name@domain.com"},
	{ID: registration.FieldPassword, Label: "Password", Type: "password", Placeholder: "Minimum 6 characters"},
	{ID: registration.FieldMobile, Label: "Mobile Number", Type: "tel", Placeholder: "10 digits exactly", MaxLength: 10},
	{ID: registration.FieldAddress, Label: "Shipping Address", Placeholder: "Street, City, Zip Code", Rows: 3},
}

type fieldView struct {
	control
	Value string
	Error string
}

type pageView struct {
	Title  string
	Fields []fieldView
	Result registration.SubmissionResult
}

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	t, err := template.New("ui").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{tmpl: t}, nil
}

// Render writes the registration page for form. Nothing is written to w if
// the template fails.
func (r *Renderer) Render(w io.Writer, form *registration.Form) error {
	view := pageView{
		Title:  pageTitle,
		Fields: make([]fieldView, 0, len(controls)),
		Result: form.Result,
	}

	for _, c := range controls {
		value, err := form.Values.Get(c.ID)
		if err != nil {
			return err
		}

		// passwords are never sent back to the browser
		if c.ID == registration.FieldPassword {
			value = ""
		}

		view.Fields = append(view.Fields, fieldView{
			control: c,
			Value:   value,
			Error:   form.Errors[c.ID],
		})
	}

	buf := new(bytes.Buffer)
	err := r.tmpl.ExecuteTemplate(buf, "page", view)
	if err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	_, err = buf.WriteTo(w)
	return err
}
