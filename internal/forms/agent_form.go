package forms

import (
	"context"

	"go.uber.org/zap"
)

// AgentStatus is the availability toggle collected by the agent form.
type AgentStatus string

const (
	AgentStatusOnline  AgentStatus = "online"
	AgentStatusOffline AgentStatus = "offline"
)

// AgentFormData carries the fields collected by the agent form. Phone holds
// the 10-digit local part while editing; Submit restores the fixed "+1"
// prefix before handing the payload out.
type AgentFormData struct {
	Name        string
	Email       string
	Phone       string
	Password    string
	Status      AgentStatus
	CategoryIDs []string
}

// AgentFormInit seeds the form in edit mode. Categories accepts either bare
// identifiers or {id, name} records; both normalize to identifiers.
type AgentFormInit struct {
	Name       string
	Email      string
	Phone      string
	Status     AgentStatus
	Categories []CategoryInput
}

// CategoryLister is the external directory the form pulls department
// options from when it opens.
type CategoryLister interface {
	List(ctx context.Context) ([]Category, error)
}

// AgentFormConfig configures an agent form instance.
type AgentFormConfig struct {
	// OnSubmit performs the actual submission. A nil return closes and
	// resets the form; a non-nil return surfaces its message in the banner.
	OnSubmit func(context.Context, AgentFormData) error
	// OnClose is invoked on cancel and after a successful submit.
	OnClose func()
	// IsEdit skips password validation so a blank value keeps the existing
	// credential.
	IsEdit  bool
	Lister  CategoryLister
	Watcher DismissWatcher
	Logger  *zap.Logger
}

const agentSubmitFallbackError = "Something went wrong. Please try again."

// AgentForm is the controller behind the agent create/edit dialog. Unlike
// the customer form it validates per field on blur, manages its own loading
// and banner state around an asynchronous submit, and closes itself on
// success.
type AgentForm struct {
	cfg        AgentFormConfig
	logger     *zap.Logger
	open       bool
	loading    bool
	banner     string
	data       AgentFormData
	errors     ValidationErrors
	categories []Category
	picker     *DepartmentPicker
}

// NewAgentForm builds a closed form.
func NewAgentForm(cfg AgentFormConfig) *AgentForm {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AgentForm{
		cfg:    cfg,
		logger: logger,
		errors: ValidationErrors{},
		picker: NewDepartmentPicker(cfg.Watcher),
	}
}

// Open transitions to the open state, seeds fields from init and fetches
// the department list. A fetch failure is logged and swallowed: the picker
// simply offers no options.
func (f *AgentForm) Open(ctx context.Context, init AgentFormInit) {
	f.open = true
	f.loading = false
	f.banner = ""
	f.errors = ValidationErrors{}
	f.SetInitialData(init)

	f.categories = nil
	if f.cfg.Lister != nil {
		cats, err := f.cfg.Lister.List(ctx)
		if err != nil {
			f.logger.Warn("department list fetch failed", zap.Error(err))
		} else {
			f.categories = cats
		}
	}
}

// SetInitialData merges caller-provided data into the form, normalizing the
// mixed category shapes into a flat identifier set.
func (f *AgentForm) SetInitialData(init AgentFormInit) {
	status := init.Status
	if status == "" {
		status = AgentStatusOffline
	}
	f.data = AgentFormData{
		Name:   init.Name,
		Email:  init.Email,
		Phone:  localPhonePart(init.Phone),
		Status: status,
	}
	f.picker.Reset()
	f.picker.SetSelection(NormalizeCategoryIDs(init.Categories))
}

// IsOpen reports whether the form currently renders.
func (f *AgentForm) IsOpen() bool {
	return f.open
}

// Loading reports whether a submission is in flight; it drives the disabled
// state of the submit control.
func (f *AgentForm) Loading() bool {
	return f.loading
}

// Banner returns the top-level submission error, empty when none.
func (f *AgentForm) Banner() string {
	return f.banner
}

// Categories returns the fetched department options.
func (f *AgentForm) Categories() []Category {
	return f.categories
}

// Picker exposes the department multi-select.
func (f *AgentForm) Picker() *DepartmentPicker {
	return f.picker
}

// Data returns the current field values, including the live selection.
func (f *AgentForm) Data() AgentFormData {
	data := f.data
	data.CategoryIDs = f.picker.Selected()
	return data
}

// Errors returns a snapshot of the field error map.
func (f *AgentForm) Errors() ValidationErrors {
	return f.errors.Copy()
}

// SetField writes a value and optimistically clears that field's error.
// The phone field keeps digits only; its exact-length rule is enforced on
// blur and at submit, not while typing.
func (f *AgentForm) SetField(field, value string) {
	if !f.open {
		return
	}
	switch field {
	case FieldName:
		f.data.Name = value
	case FieldEmail:
		f.data.Email = value
	case FieldPhone:
		f.data.Phone = digitsOnly(value)
	case FieldPassword:
		f.data.Password = value
	default:
		return
	}
	f.errors.Clear(field)
}

// SetStatus flips the availability toggle.
func (f *AgentForm) SetStatus(status AgentStatus) {
	if !f.open {
		return
	}
	f.data.Status = status
}

// Blur re-validates a single field, setting or clearing its error.
func (f *AgentForm) Blur(field string) {
	if !f.open {
		return
	}
	f.errors.Set(field, f.validateField(field))
}

func (f *AgentForm) validateField(field string) string {
	switch field {
	case FieldName:
		return validateRequired(f.data.Name, "Name is required")
	case FieldEmail:
		return validateEmail(f.data.Email)
	case FieldPassword:
		return validatePassword(f.data.Password, f.cfg.IsEdit)
	case FieldPhone:
		return validateAgentPhone(f.data.Phone)
	case FieldDepartment:
		if len(f.picker.Selected()) == 0 {
			return "Select at least one department"
		}
		return ""
	default:
		return ""
	}
}

// validateAll runs every validator, accumulating results without
// short-circuiting so all failures show together.
func (f *AgentForm) validateAll() ValidationErrors {
	errs := ValidationErrors{}
	for _, field := range []string{FieldName, FieldEmail, FieldPassword, FieldPhone, FieldDepartment} {
		errs.Set(field, f.validateField(field))
	}
	return errs
}

// Submit validates every field and, on a full pass, runs the asynchronous
// submission with the loading flag held for its duration. Success resets
// and closes the form; failure surfaces the error message in the banner and
// keeps the form open. The loading flag is released on every path.
func (f *AgentForm) Submit(ctx context.Context) {
	if !f.open || f.loading {
		return
	}

	errs := f.validateAll()
	if !errs.Valid() {
		f.errors = errs
		return
	}
	f.errors = ValidationErrors{}

	f.loading = true
	f.banner = ""
	defer func() { f.loading = false }()

	payload := f.Data()
	payload.Phone = agentPhonePrefix + payload.Phone

	if f.cfg.OnSubmit != nil {
		if err := f.cfg.OnSubmit(ctx, payload); err != nil {
			msg := err.Error()
			if msg == "" {
				msg = agentSubmitFallbackError
			}
			f.banner = msg
			return
		}
	}

	f.reset()
	if f.cfg.OnClose != nil {
		f.cfg.OnClose()
	}
}

// Cancel resets and closes without submitting.
func (f *AgentForm) Cancel() {
	if !f.open {
		return
	}
	f.reset()
	if f.cfg.OnClose != nil {
		f.cfg.OnClose()
	}
}

func (f *AgentForm) reset() {
	f.data = AgentFormData{Status: AgentStatusOffline}
	f.errors = ValidationErrors{}
	f.banner = ""
	f.picker.Reset()
	f.open = false
}
