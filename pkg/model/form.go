package model

// FieldKind tells renderers which control to draw for a field.
type FieldKind string

const (
	FieldKindEmail         FieldKind = "email"
	FieldKindPassword      FieldKind = "password"
	FieldKindText          FieldKind = "text"
	FieldKindSelect        FieldKind = "select"
	FieldKindCheckbox      FieldKind = "checkbox"
	FieldKindCheckboxGroup FieldKind = "checkbox-group"
)

// Option is a selectable value for select and checkbox-group fields.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes a single control. Row groups consecutive fields that share
// a layout row; Separator asks HTML renderers for a rule before the field.
type Field struct {
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Kind      FieldKind `json:"kind"`
	Row       string    `json:"row,omitempty"`
	Separator bool      `json:"separator,omitempty"`
	Options   []Option  `json:"options,omitempty"`
}

// Form is the static description of the signup form.
type Form struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Intro       string  `json:"intro"`
	SubmitLabel string  `json:"submitLabel"`
	ResetLabel  string  `json:"resetLabel"`
	Fields      []Field `json:"fields"`
}

// Field returns the descriptor registered under name.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Options returns the options declared for name, or nil.
func (f Form) Options(name string) []Option {
	field, ok := f.Field(name)
	if !ok || len(field.Options) == 0 {
		return nil
	}
	return append([]Option(nil), field.Options...)
}

// RoleOptions are the choices offered by the role select. The first entry is
// what a browser submits when the user never touches the control.
var RoleOptions = []Option{
	{Value: "student", Label: "Student"},
	{Value: "teacher", Label: "Teacher"},
	{Value: "employee", Label: "Employee"},
	{Value: "founder", Label: "Founder"},
	{Value: "other", Label: "Other"},
}

// AcquisitionOptions are the "How did you find us?" checkboxes.
var AcquisitionOptions = []Option{
	{Value: "google", Label: "Google"},
	{Value: "friend", Label: "Referred by friend"},
	{Value: "other", Label: "Other"},
}

// SignupForm builds the signup form descriptor and applies decorators in
// order. Decorator errors abort the build.
func SignupForm(decorators ...Decorator) (Form, error) {
	form := Form{
		ID:          "signup",
		Title:       "Welcome on board!",
		Intro:       "We just need a little bit of data from you to get you started 🚀",
		SubmitLabel: "Sign up",
		ResetLabel:  "Reset",
		Fields: []Field{
			{Name: FieldEmail, Label: "Email", Kind: FieldKindEmail},
			{Name: FieldPassword, Label: "Password", Kind: FieldKindPassword, Row: "password"},
			{Name: FieldConfirmPassword, Label: "Confirm Password", Kind: FieldKindPassword, Row: "password"},
			{Name: FieldFirstName, Label: "First Name", Kind: FieldKindText, Row: "name", Separator: true},
			{Name: FieldLastName, Label: "Last Name", Kind: FieldKindText, Row: "name"},
			{Name: FieldRole, Label: "What best describes your role?", Kind: FieldKindSelect, Options: cloneOptions(RoleOptions)},
			{Name: FieldAcquisition, Label: "How did you find us?", Kind: FieldKindCheckboxGroup, Options: cloneOptions(AcquisitionOptions)},
			{Name: FieldTerms, Label: "I agree to the terms and conditions", Kind: FieldKindCheckbox},
		},
	}

	for _, decorator := range decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&form); err != nil {
			return Form{}, err
		}
	}
	return form, nil
}

func cloneOptions(in []Option) []Option {
	return append([]Option(nil), in...)
}
