package forms

// CustomerFormData carries the fields collected by the customer form.
type CustomerFormData struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

// CustomerFormConfig configures a customer form instance.
type CustomerFormConfig struct {
	// OnSubmit receives the validated payload. The form does not reset or
	// close itself afterwards; the caller owns both.
	OnSubmit func(CustomerFormData)
	// OnClose is invoked when the form is cancelled.
	OnClose func()
	// IsEdit disables password validation so an existing credential can be
	// left untouched.
	IsEdit      bool
	Title       string
	SubmitLabel string
}

// CustomerForm is the controller behind the customer create/edit dialog.
// All state is local and ephemeral: it is seeded when the form opens and
// discarded on cancel. Validation runs only at submit time; editing a field
// optimistically clears its error without re-checking it.
type CustomerForm struct {
	cfg    CustomerFormConfig
	open   bool
	data   CustomerFormData
	errors ValidationErrors
}

// NewCustomerForm builds a closed form.
func NewCustomerForm(cfg CustomerFormConfig) *CustomerForm {
	return &CustomerForm{cfg: cfg, errors: ValidationErrors{}}
}

// Open transitions the form from closed to open, seeding fields from the
// provided initial data. Missing fields stay empty. Any prior errors are
// cleared. Opening an already-open form re-seeds it.
func (f *CustomerForm) Open(initial CustomerFormData) {
	f.open = true
	f.data = initial
	f.errors = ValidationErrors{}
}

// IsOpen reports whether the form currently renders.
func (f *CustomerForm) IsOpen() bool {
	return f.open
}

// Title returns the configured dialog title.
func (f *CustomerForm) Title() string {
	return f.cfg.Title
}

// SubmitLabel returns the configured submit-control label.
func (f *CustomerForm) SubmitLabel() string {
	return f.cfg.SubmitLabel
}

// Data returns the current field values.
func (f *CustomerForm) Data() CustomerFormData {
	return f.data
}

// Errors returns a snapshot of the current error map.
func (f *CustomerForm) Errors() ValidationErrors {
	return f.errors.Copy()
}

// SetField writes a value into the named field. Free-text fields take the
// value verbatim; the phone field keeps only digits and drops anything past
// the 15-digit limit. Editing a field clears its error without
// re-validating it.
func (f *CustomerForm) SetField(field, value string) {
	if !f.open {
		return
	}
	switch field {
	case FieldName:
		f.data.Name = value
	case FieldEmail:
		f.data.Email = value
	case FieldPhoneNumber:
		f.data.PhoneNumber = clampDigits(value, customerPhoneMaxDigits)
	case FieldPassword:
		f.data.Password = value
	default:
		return
	}
	f.errors.Clear(field)
}

// MergeExternalErrors folds server-side field errors into the local map,
// overwriting same-named local entries. Call it when the external errors
// change, typically after the caller's submission fails upstream.
func (f *CustomerForm) MergeExternalErrors(external ValidationErrors) {
	if !f.open || len(external) == 0 {
		return
	}
	f.errors = Merge(f.errors, external)
}

// validate runs every field check in a fixed order, accumulating failures.
// No check short-circuits another.
func (f *CustomerForm) validate() ValidationErrors {
	errs := ValidationErrors{}
	errs.Set(FieldName, validateRequired(f.data.Name, "Name is required"))
	errs.Set(FieldEmail, validateEmail(f.data.Email))
	errs.Set(FieldPhoneNumber, validateCustomerPhone(f.data.PhoneNumber))
	errs.Set(FieldPassword, validatePassword(f.data.Password, f.cfg.IsEdit))
	return errs
}

// Submit validates all fields and, only when every check passes, hands the
// payload to OnSubmit. It reports whether the submission happened. The form
// keeps its state either way; closing after success is the caller's job.
func (f *CustomerForm) Submit() bool {
	if !f.open {
		return false
	}
	errs := f.validate()
	if !errs.Valid() {
		f.errors = errs
		return false
	}
	f.errors = ValidationErrors{}
	if f.cfg.OnSubmit != nil {
		f.cfg.OnSubmit(f.data)
	}
	return true
}

// Cancel unconditionally resets every field, clears all errors, closes the
// form and notifies the caller.
func (f *CustomerForm) Cancel() {
	if !f.open {
		return
	}
	f.data = CustomerFormData{}
	f.errors = ValidationErrors{}
	f.open = false
	if f.cfg.OnClose != nil {
		f.cfg.OnClose()
	}
}
