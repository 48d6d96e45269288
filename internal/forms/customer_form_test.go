package forms

import "testing"

func validCustomerData() CustomerFormData {
	return CustomerFormData{
		Name:        "Jane Doe",
		Email:       "jane@x.com",
		PhoneNumber: "5551234567",
		Password:    "secret1",
	}
}

func openCustomerForm(t *testing.T, cfg CustomerFormConfig, initial CustomerFormData) *CustomerForm {
	t.Helper()
	form := NewCustomerForm(cfg)
	form.Open(initial)
	return form
}

func TestCustomerFormSubmitValidPayload(t *testing.T) {
	var got []CustomerFormData
	form := openCustomerForm(t, CustomerFormConfig{
		OnSubmit: func(data CustomerFormData) { got = append(got, data) },
	}, CustomerFormData{})

	form.SetField(FieldName, "Jane Doe")
	form.SetField(FieldEmail, "jane@x.com")
	form.SetField(FieldPhoneNumber, "5551234567")
	form.SetField(FieldPassword, "secret1")

	if !form.Submit() {
		t.Fatalf("expected submit to pass, errors: %v", form.Errors())
	}
	if len(got) != 1 {
		t.Fatalf("expected onSubmit called once, got %d", len(got))
	}
	if got[0] != validCustomerData() {
		t.Errorf("unexpected payload: %+v", got[0])
	}
	// The form does not close or reset itself after success.
	if !form.IsOpen() {
		t.Error("form should stay open after submit")
	}
	if form.Data().Name != "Jane Doe" {
		t.Error("form state should survive a successful submit")
	}
}

func TestCustomerFormPhoneStripsAndClamps(t *testing.T) {
	form := openCustomerForm(t, CustomerFormConfig{}, CustomerFormData{})

	form.SetField(FieldPhoneNumber, "abc123456789012345")
	if got := form.Data().PhoneNumber; got != "123456789012345" {
		t.Errorf("expected 15 clamped digits, got %q", got)
	}

	form.SetField(FieldPhoneNumber, "(555) 123-4567")
	if got := form.Data().PhoneNumber; got != "5551234567" {
		t.Errorf("expected digits only, got %q", got)
	}
}

func TestCustomerFormValidationFailures(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*CustomerFormData)
		wantField string
	}{
		{"empty name", func(d *CustomerFormData) { d.Name = "   " }, FieldName},
		{"missing email", func(d *CustomerFormData) { d.Email = "" }, FieldEmail},
		{"malformed email", func(d *CustomerFormData) { d.Email = "jane@x" }, FieldEmail},
		{"phone too short", func(d *CustomerFormData) { d.PhoneNumber = "555123" }, FieldPhoneNumber},
		{"empty password", func(d *CustomerFormData) { d.Password = "" }, FieldPassword},
		{"short password", func(d *CustomerFormData) { d.Password = "abc" }, FieldPassword},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			data := validCustomerData()
			tc.mutate(&data)

			form := openCustomerForm(t, CustomerFormConfig{
				OnSubmit: func(CustomerFormData) { calls++ },
			}, data)

			if form.Submit() {
				t.Fatal("expected submit to fail")
			}
			if calls != 0 {
				t.Errorf("onSubmit must not run on validation failure, ran %d times", calls)
			}
			errs := form.Errors()
			if errs[tc.wantField] == "" {
				t.Errorf("expected error on %q, got %v", tc.wantField, errs)
			}
			// Only the offending field should carry an error.
			for field, msg := range errs {
				if field != tc.wantField {
					t.Errorf("unexpected error on %q: %q", field, msg)
				}
			}
		})
	}
}

func TestCustomerFormAllErrorsAccumulate(t *testing.T) {
	form := openCustomerForm(t, CustomerFormConfig{}, CustomerFormData{})

	if form.Submit() {
		t.Fatal("expected submit to fail")
	}
	errs := form.Errors()
	for _, field := range []string{FieldName, FieldEmail, FieldPhoneNumber, FieldPassword} {
		if errs[field] == "" {
			t.Errorf("expected error on %q, got %v", field, errs)
		}
	}
}

func TestCustomerFormEditModeSkipsPassword(t *testing.T) {
	submitted := false
	data := validCustomerData()
	data.Password = ""
	form := openCustomerForm(t, CustomerFormConfig{
		IsEdit:   true,
		OnSubmit: func(CustomerFormData) { submitted = true },
	}, data)

	if !form.Submit() {
		t.Fatalf("edit mode must not validate password, errors: %v", form.Errors())
	}
	if !submitted {
		t.Error("expected onSubmit to run")
	}
}

func TestCustomerFormOptimisticErrorClear(t *testing.T) {
	form := openCustomerForm(t, CustomerFormConfig{}, CustomerFormData{})
	form.Submit()
	if form.Errors()[FieldEmail] == "" {
		t.Fatal("expected email error after failed submit")
	}

	// Editing clears the error without re-validating, even when the new
	// value is still invalid.
	form.SetField(FieldEmail, "still-bad")
	if msg := form.Errors()[FieldEmail]; msg != "" {
		t.Errorf("expected error cleared on edit, got %q", msg)
	}
}

func TestCustomerFormMergeExternalErrors(t *testing.T) {
	form := openCustomerForm(t, CustomerFormConfig{}, CustomerFormData{})
	form.Submit()
	localEmail := form.Errors()[FieldEmail]
	if localEmail == "" {
		t.Fatal("expected local email error")
	}

	form.MergeExternalErrors(ValidationErrors{
		FieldEmail: "Email is already in use",
		"server":   "upstream rejected the record",
	})

	errs := form.Errors()
	if errs[FieldEmail] != "Email is already in use" {
		t.Errorf("external error should overwrite local, got %q", errs[FieldEmail])
	}
	if errs["server"] == "" {
		t.Error("expected external-only error merged in")
	}
	if errs[FieldName] == "" {
		t.Error("local errors without an external counterpart must survive")
	}
}

func TestCustomerFormCancelResets(t *testing.T) {
	closed := false
	form := openCustomerForm(t, CustomerFormConfig{
		OnClose: func() { closed = true },
	}, validCustomerData())
	form.Submit() // populate nothing; valid data
	form.SetField(FieldEmail, "broken")
	form.Submit() // now errors exist

	form.Cancel()

	if !closed {
		t.Error("expected onClose invoked")
	}
	if form.IsOpen() {
		t.Error("expected form closed")
	}
	if form.Data() != (CustomerFormData{}) {
		t.Errorf("expected fields reset, got %+v", form.Data())
	}
	if len(form.Errors()) != 0 {
		t.Errorf("expected errors cleared, got %v", form.Errors())
	}
}

func TestCustomerFormLabels(t *testing.T) {
	form := NewCustomerForm(CustomerFormConfig{
		Title:       "Edit Customer",
		SubmitLabel: "Save Changes",
	})
	if form.Title() != "Edit Customer" {
		t.Errorf("unexpected title: %q", form.Title())
	}
	if form.SubmitLabel() != "Save Changes" {
		t.Errorf("unexpected submit label: %q", form.SubmitLabel())
	}
}

func TestCustomerFormOpenSeedsAndClearsErrors(t *testing.T) {
	form := NewCustomerForm(CustomerFormConfig{})
	form.Open(CustomerFormData{})
	form.Submit()
	if len(form.Errors()) == 0 {
		t.Fatal("expected errors before re-open")
	}

	seed := validCustomerData()
	form.Open(seed)
	if form.Data() != seed {
		t.Errorf("expected seeded data, got %+v", form.Data())
	}
	if len(form.Errors()) != 0 {
		t.Errorf("expected errors cleared on open, got %v", form.Errors())
	}
}

func TestCustomerFormClosedIsInert(t *testing.T) {
	calls := 0
	form := NewCustomerForm(CustomerFormConfig{
		OnSubmit: func(CustomerFormData) { calls++ },
		OnClose:  func() { calls++ },
	})

	form.SetField(FieldName, "ignored")
	form.MergeExternalErrors(ValidationErrors{FieldName: "nope"})
	if form.Submit() {
		t.Error("closed form must not submit")
	}
	form.Cancel()

	if calls != 0 {
		t.Errorf("closed form invoked callbacks %d times", calls)
	}
	if form.Data() != (CustomerFormData{}) {
		t.Errorf("closed form mutated state: %+v", form.Data())
	}
}
