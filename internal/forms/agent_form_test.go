package forms

import (
	"context"
	"errors"
	"testing"
)

type stubLister struct {
	categories []Category
	err        error
	calls      int
}

func (s *stubLister) List(context.Context) ([]Category, error) {
	s.calls++
	return s.categories, s.err
}

func validAgentInit() AgentFormInit {
	return AgentFormInit{
		Name:   "Sam Agent",
		Email:  "sam@helpdesk.io",
		Phone:  "5551234567",
		Status: AgentStatusOnline,
	}
}

func openAgentForm(t *testing.T, cfg AgentFormConfig, init AgentFormInit) *AgentForm {
	t.Helper()
	form := NewAgentForm(cfg)
	form.Open(context.Background(), init)
	return form
}

func submitReady(t *testing.T, form *AgentForm) {
	t.Helper()
	form.SetField(FieldPassword, "secret1")
	form.Picker().Toggle("dept-1")
}

func TestAgentFormOpenFetchesCategories(t *testing.T) {
	lister := &stubLister{categories: []Category{{ID: "dept-1", Name: "Billing"}}}
	form := openAgentForm(t, AgentFormConfig{Lister: lister}, AgentFormInit{})

	if lister.calls != 1 {
		t.Fatalf("expected one fetch, got %d", lister.calls)
	}
	if len(form.Categories()) != 1 || form.Categories()[0].Name != "Billing" {
		t.Errorf("unexpected categories: %v", form.Categories())
	}
}

func TestAgentFormFetchFailureSwallowed(t *testing.T) {
	lister := &stubLister{err: errors.New("directory down")}
	form := openAgentForm(t, AgentFormConfig{Lister: lister}, AgentFormInit{})

	if !form.IsOpen() {
		t.Fatal("fetch failure must not keep the form closed")
	}
	if len(form.Categories()) != 0 {
		t.Errorf("expected empty category list, got %v", form.Categories())
	}
}

func TestAgentFormSubmitRestoresPhonePrefix(t *testing.T) {
	var got *AgentFormData
	form := openAgentForm(t, AgentFormConfig{
		OnSubmit: func(_ context.Context, data AgentFormData) error {
			got = &data
			return nil
		},
	}, validAgentInit())
	submitReady(t, form)

	form.Submit(context.Background())

	if got == nil {
		t.Fatal("expected onSubmit to run")
	}
	if got.Phone != "+15551234567" {
		t.Errorf("expected prefixed phone, got %q", got.Phone)
	}
}

func TestAgentFormInitStripsPhonePrefix(t *testing.T) {
	init := validAgentInit()
	init.Phone = "+15551234567"
	form := openAgentForm(t, AgentFormConfig{}, init)

	if got := form.Data().Phone; got != "5551234567" {
		t.Errorf("expected local 10-digit part, got %q", got)
	}
}

func TestAgentFormDepartmentAlwaysRequired(t *testing.T) {
	calls := 0
	form := openAgentForm(t, AgentFormConfig{
		OnSubmit: func(context.Context, AgentFormData) error {
			calls++
			return nil
		},
	}, validAgentInit())
	form.SetField(FieldPassword, "secret1")
	// no departments selected

	form.Submit(context.Background())

	if calls != 0 {
		t.Error("submit must abort without a department")
	}
	if form.Errors()[FieldDepartment] == "" {
		t.Errorf("expected department error, got %v", form.Errors())
	}
}

func TestAgentFormPhoneExactlyTenDigits(t *testing.T) {
	for _, phone := range []string{"555123456", "55512345678"} {
		init := validAgentInit()
		init.Phone = phone
		form := openAgentForm(t, AgentFormConfig{}, init)
		submitReady(t, form)

		form.Submit(context.Background())
		if form.Errors()[FieldPhone] == "" {
			t.Errorf("phone %q: expected exact-length error", phone)
		}
	}
}

func TestAgentFormRejectionShowsBanner(t *testing.T) {
	form := openAgentForm(t, AgentFormConfig{
		OnSubmit: func(context.Context, AgentFormData) error {
			return errors.New("email already registered")
		},
	}, validAgentInit())
	submitReady(t, form)

	form.Submit(context.Background())

	if !form.IsOpen() {
		t.Fatal("rejected submit must leave the form open")
	}
	if form.Banner() != "email already registered" {
		t.Errorf("unexpected banner: %q", form.Banner())
	}
	if form.Loading() {
		t.Error("loading flag must be released after failure")
	}
}

func TestAgentFormBannerFallbackMessage(t *testing.T) {
	form := openAgentForm(t, AgentFormConfig{
		OnSubmit: func(context.Context, AgentFormData) error {
			return errors.New("")
		},
	}, validAgentInit())
	submitReady(t, form)

	form.Submit(context.Background())

	if form.Banner() != agentSubmitFallbackError {
		t.Errorf("expected fallback banner, got %q", form.Banner())
	}
}

func TestAgentFormSuccessResetsAndCloses(t *testing.T) {
	closed := false
	form := openAgentForm(t, AgentFormConfig{
		OnSubmit: func(context.Context, AgentFormData) error { return nil },
		OnClose:  func() { closed = true },
	}, validAgentInit())
	submitReady(t, form)

	form.Submit(context.Background())

	if !closed {
		t.Error("expected onClose after success")
	}
	if form.IsOpen() {
		t.Error("expected form closed after success")
	}
	if form.Loading() {
		t.Error("loading flag must be released after success")
	}
	if len(form.Picker().Selected()) != 0 {
		t.Error("expected selection cleared")
	}
	if form.Data().Name != "" {
		t.Errorf("expected fields reset, got %+v", form.Data())
	}
}

func TestAgentFormRetryAfterRejectionClearsBanner(t *testing.T) {
	fail := true
	form := openAgentForm(t, AgentFormConfig{
		OnSubmit: func(context.Context, AgentFormData) error {
			if fail {
				return errors.New("transient failure")
			}
			return nil
		},
	}, validAgentInit())
	submitReady(t, form)

	form.Submit(context.Background())
	if form.Banner() == "" {
		t.Fatal("expected banner after first attempt")
	}

	fail = false
	form.Submit(context.Background())
	if form.IsOpen() {
		t.Error("expected success on retry")
	}
	if form.Banner() != "" {
		t.Errorf("expected banner cleared, got %q", form.Banner())
	}
}

func TestAgentFormReentrantSubmitIgnored(t *testing.T) {
	var form *AgentForm
	calls := 0
	form = NewAgentForm(AgentFormConfig{
		OnSubmit: func(ctx context.Context, _ AgentFormData) error {
			calls++
			// A second trigger while the first is in flight must be
			// ignored: the loading flag drives the disabled control.
			form.Submit(ctx)
			return nil
		},
	})
	form.Open(context.Background(), validAgentInit())
	submitReady(t, form)

	form.Submit(context.Background())

	if calls != 1 {
		t.Errorf("expected a single submission, got %d", calls)
	}
}

func TestAgentFormEditModePasswordOptional(t *testing.T) {
	submitted := false
	form := openAgentForm(t, AgentFormConfig{
		IsEdit: true,
		OnSubmit: func(context.Context, AgentFormData) error {
			submitted = true
			return nil
		},
	}, validAgentInit())
	form.Picker().Toggle("dept-1")
	// password left blank to keep the existing credential

	form.Submit(context.Background())

	if !submitted {
		t.Fatalf("edit mode must not validate password, errors: %v", form.Errors())
	}
}

func TestAgentFormBlurRevalidates(t *testing.T) {
	form := openAgentForm(t, AgentFormConfig{}, AgentFormInit{})

	form.Blur(FieldEmail)
	if form.Errors()[FieldEmail] == "" {
		t.Fatal("expected email error on blur of empty field")
	}

	form.SetField(FieldEmail, "sam@helpdesk")
	if form.Errors()[FieldEmail] != "" {
		t.Fatal("editing must clear the error optimistically")
	}

	form.Blur(FieldEmail)
	if form.Errors()[FieldEmail] == "" {
		t.Error("blur must re-validate the still-invalid value")
	}

	form.SetField(FieldEmail, "sam@helpdesk.io")
	form.Blur(FieldEmail)
	if msg := form.Errors()[FieldEmail]; msg != "" {
		t.Errorf("expected valid email, got %q", msg)
	}
}

func TestAgentFormAllValidatorsRunTogether(t *testing.T) {
	form := openAgentForm(t, AgentFormConfig{}, AgentFormInit{})

	form.Submit(context.Background())

	errs := form.Errors()
	for _, field := range []string{FieldName, FieldEmail, FieldPassword, FieldPhone, FieldDepartment} {
		if errs[field] == "" {
			t.Errorf("expected error on %q, got %v", field, errs)
		}
	}
}

func TestAgentFormInitNormalizesCategories(t *testing.T) {
	init := validAgentInit()
	init.Categories = []CategoryInput{
		RawID("dept-1"),
		CategoryRef{ID: "dept-2", Name: "Billing"},
		RawID("dept-1"), // duplicate
	}
	form := openAgentForm(t, AgentFormConfig{}, init)

	got := form.Picker().Selected()
	if len(got) != 2 || got[0] != "dept-1" || got[1] != "dept-2" {
		t.Errorf("unexpected normalized selection: %v", got)
	}
}

func TestAgentFormCancelResetsAndCloses(t *testing.T) {
	closed := false
	form := openAgentForm(t, AgentFormConfig{
		OnClose: func() { closed = true },
	}, validAgentInit())
	form.Picker().Toggle("dept-1")
	form.Submit(context.Background()) // leaves a password error behind

	form.Cancel()

	if !closed {
		t.Error("expected onClose invoked")
	}
	if form.IsOpen() {
		t.Error("expected form closed")
	}
	if len(form.Errors()) != 0 {
		t.Errorf("expected errors cleared, got %v", form.Errors())
	}
	if form.Data().Name != "" || len(form.Picker().Selected()) != 0 {
		t.Error("expected state cleared")
	}
}
