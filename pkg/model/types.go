package model

// Field names as submitted by the rendered form.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm-password"
	FieldFirstName       = "first-name"
	FieldLastName        = "last-name"
	FieldRole            = "role"
	FieldTerms           = "terms"
	FieldAcquisition     = "acquisition"
)

// FieldNames lists every submitted field in validation order.
var FieldNames = []string{
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
	FieldFirstName,
	FieldLastName,
	FieldRole,
	FieldTerms,
	FieldAcquisition,
}

// Values is the flat record built from one submission. Absent text fields are
// empty strings, an absent terms checkbox is false and an absent acquisition
// selection is empty.
type Values struct {
	Email           string   `json:"email" yaml:"email"`
	Password        string   `json:"password" yaml:"password"`
	ConfirmPassword string   `json:"confirm-password" yaml:"confirm-password"`
	FirstName       string   `json:"first-name" yaml:"first-name"`
	LastName        string   `json:"last-name" yaml:"last-name"`
	Role            string   `json:"role" yaml:"role"`
	Terms           bool     `json:"terms" yaml:"terms"`
	Acquisition     []string `json:"acquisition" yaml:"acquisition"`
}

// Clone returns a copy that shares no slices with v.
func (v Values) Clone() Values {
	out := v
	if v.Acquisition != nil {
		out.Acquisition = append([]string(nil), v.Acquisition...)
	}
	return out
}

// HasAcquisition reports whether channel was among the selected options.
func (v Values) HasAcquisition(channel string) bool {
	for _, selected := range v.Acquisition {
		if selected == channel {
			return true
		}
	}
	return false
}

// Text returns the string value for a text-like field name. Unknown names,
// terms and acquisition resolve to "".
func (v Values) Text(name string) string {
	switch name {
	case FieldEmail:
		return v.Email
	case FieldPassword:
		return v.Password
	case FieldConfirmPassword:
		return v.ConfirmPassword
	case FieldFirstName:
		return v.FirstName
	case FieldLastName:
		return v.LastName
	case FieldRole:
		return v.Role
	default:
		return ""
	}
}

// SetText assigns a text-like field by name and reports whether the name was
// recognised.
func (v *Values) SetText(name, value string) bool {
	switch name {
	case FieldEmail:
		v.Email = value
	case FieldPassword:
		v.Password = value
	case FieldConfirmPassword:
		v.ConfirmPassword = value
	case FieldFirstName:
		v.FirstName = value
	case FieldLastName:
		v.LastName = value
	case FieldRole:
		v.Role = value
	default:
		return false
	}
	return true
}

// Result is the outcome of one submission. A successful result has no errors
// and no entered values; a failed one carries the ordered messages and the
// values exactly as submitted so the form can be re-populated.
type Result struct {
	Errors  []string `json:"errors"`
	Entered *Values  `json:"enteredValues,omitempty"`
}

// OK reports whether the submission passed every rule.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Clone returns a deep copy of r.
func (r Result) Clone() Result {
	out := Result{}
	if len(r.Errors) > 0 {
		out.Errors = append([]string(nil), r.Errors...)
	}
	if r.Entered != nil {
		entered := r.Entered.Clone()
		out.Entered = &entered
	}
	return out
}
