package registration

type ResultType string

const (
	ResultSuccess ResultType = "success"
	ResultError   ResultType = "error"

	MsgSuccess = "Registration successful! Welcome!"
	MsgFailure = "Please review and correct the errors below."
)

// SubmissionResult is the banner shown after a submit. The zero value shows
// nothing.
type SubmissionResult struct {
	Type    ResultType `json:"type"`
	Message string     `json:"message"`
}

func (r SubmissionResult) Empty() bool {
	return r.Message == ""
}

func (r SubmissionResult) Success() bool {
	return r.Type == ResultSuccess
}

// Submit validates values as a whole. The form is accepted or rejected in one
// piece.
func Submit(values FormValues) (SubmissionResult, ValidationErrors) {
	errs, ok := Validate(values)
	if !ok {
		return SubmissionResult{Type: ResultError, Message: MsgFailure}, errs
	}

	return SubmissionResult{Type: ResultSuccess, Message: MsgSuccess}, errs
}

// Form is the state of one page session.
type Form struct {
	Values FormValues
	Errors ValidationErrors
	Result SubmissionResult
}

func NewForm(values FormValues) *Form {
	return &Form{
		Values: values,
		Errors: ValidationErrors{},
	}
}

// Set changes one value and drops any message shown for that field. The
// banner stays as it is until the next submit.
func (f *Form) Set(field, value string) error {
	err := f.Values.Set(field, value)
	if err != nil {
		return err
	}

	delete(f.Errors, field)

	return nil
}

// Submit replaces the previous banner and field messages with the outcome of
// validating the current values. Values are kept after a successful submit.
func (f *Form) Submit() bool {
	f.Result, f.Errors = Submit(f.Values)

	return f.Result.Success()
}
