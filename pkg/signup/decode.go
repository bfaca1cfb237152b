package signup

import (
	"net/url"

	"github.com/goliatone/go-signupform/pkg/model"
)

// Decode maps a submitted form onto Values. Missing text fields become "",
// a missing or blank terms value becomes false and a missing acquisition key
// becomes an empty selection. Values are not trimmed or otherwise altered.
func Decode(form url.Values) model.Values {
	values := model.Values{
		Email:           form.Get(model.FieldEmail),
		Password:        form.Get(model.FieldPassword),
		ConfirmPassword: form.Get(model.FieldConfirmPassword),
		FirstName:       form.Get(model.FieldFirstName),
		LastName:        form.Get(model.FieldLastName),
		Role:            form.Get(model.FieldRole),
		Terms:           form.Get(model.FieldTerms) != "",
	}
	if selected := form[model.FieldAcquisition]; len(selected) > 0 {
		values.Acquisition = append([]string(nil), selected...)
	}
	return values
}

// Encode is the inverse of Decode. A checked terms box is sent as "on", the
// way browsers submit checkboxes without a value attribute.
func Encode(values model.Values) url.Values {
	form := url.Values{}
	form.Set(model.FieldEmail, values.Email)
	form.Set(model.FieldPassword, values.Password)
	form.Set(model.FieldConfirmPassword, values.ConfirmPassword)
	form.Set(model.FieldFirstName, values.FirstName)
	form.Set(model.FieldLastName, values.LastName)
	form.Set(model.FieldRole, values.Role)
	if values.Terms {
		form.Set(model.FieldTerms, "on")
	}
	for _, channel := range values.Acquisition {
		form.Add(model.FieldAcquisition, channel)
	}
	return form
}
