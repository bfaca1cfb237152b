package openapi

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/signup"
)

const (
	mediaTypeForm = "application/x-www-form-urlencoded"
	mediaTypeHTML = "text/html"
	mediaTypeJSON = "application/json"

	// ExtensionMessage carries the validation message attached to a
	// property's rule.
	ExtensionMessage = "x-signup-message"
)

// Document builds the OpenAPI description of the form endpoints.
func Document(form model.Form, options ...Option) (*openapi3.T, error) {
	if len(form.Fields) == 0 {
		return nil, errors.New("openapi: form has no fields")
	}
	cfg := defaultConfig()
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	body, err := FormSchema(form)
	if err != nil {
		return nil, err
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       form.Title,
			Description: form.Intro,
			Version:     cfg.version,
		},
		Paths: openapi3.NewPaths(),
	}
	if cfg.serverURL != "" {
		doc.Servers = openapi3.Servers{{URL: cfg.serverURL}}
	}

	get := openapi3.NewOperation()
	get.OperationID = "getSignupForm"
	get.Summary = "Render the signup form"
	get.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, pageResponse("Form in its current state")),
	)

	post := openapi3.NewOperation()
	post.OperationID = "submitSignupForm"
	post.Summary = "Validate a signup submission"
	post.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithContent(openapi3.NewContentWithSchema(body, []string{mediaTypeForm})),
	}
	post.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, pageResponse("Submission accepted; the form is shown empty")),
		openapi3.WithStatus(422, pageResponse("Submission rejected; errors and entered values are returned")),
	)

	reset := openapi3.NewOperation()
	reset.OperationID = "resetSignupForm"
	reset.Summary = "Clear the form"
	reset.Responses = openapi3.NewResponses(
		openapi3.WithStatus(303, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Redirect back to the form"),
		}),
	)

	doc.Paths.Set(cfg.path, &openapi3.PathItem{Get: get, Post: post})
	doc.Paths.Set(cfg.resetPath, &openapi3.PathItem{Post: reset})
	return doc, nil
}

// FormSchema describes the urlencoded body of a submission. No property is
// required on the wire: absent fields decode to empty values and fail the
// matching rule instead.
func FormSchema(form model.Form) (*openapi3.Schema, error) {
	schema := openapi3.NewObjectSchema()
	for _, field := range form.Fields {
		property, err := fieldSchema(field)
		if err != nil {
			return nil, err
		}
		property.Title = field.Label
		if message := messageFor(field.Name); message != "" {
			property.Extensions = map[string]any{ExtensionMessage: message}
		}
		schema.WithProperty(field.Name, property)
	}
	return schema, nil
}

// ResultSchema describes model.Result as returned by the JSON renderer.
func ResultSchema() *openapi3.Schema {
	entered := openapi3.NewObjectSchema()
	entered.Description = "Values as submitted; present only when errors is non-empty"
	for _, name := range model.FieldNames {
		switch name {
		case model.FieldTerms:
			entered.WithProperty(name, openapi3.NewBoolSchema())
		case model.FieldAcquisition:
			entered.WithProperty(name, openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()))
		default:
			entered.WithProperty(name, openapi3.NewStringSchema())
		}
	}

	return openapi3.NewObjectSchema().
		WithProperty("errors", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithProperty("enteredValues", entered)
}

func fieldSchema(field model.Field) (*openapi3.Schema, error) {
	switch field.Kind {
	case model.FieldKindEmail:
		return openapi3.NewStringSchema().WithFormat("email"), nil
	case model.FieldKindPassword:
		if field.Name == model.FieldPassword {
			return openapi3.NewStringSchema().WithFormat("password").WithMinLength(signup.MinPasswordLength), nil
		}
		return openapi3.NewStringSchema().WithFormat("password"), nil
	case model.FieldKindText:
		return openapi3.NewStringSchema(), nil
	case model.FieldKindSelect:
		return openapi3.NewStringSchema().WithEnum(optionValues(field.Options)...), nil
	case model.FieldKindCheckbox:
		return openapi3.NewBoolSchema(), nil
	case model.FieldKindCheckboxGroup:
		items := openapi3.NewStringSchema().WithEnum(optionValues(field.Options)...)
		return openapi3.NewArraySchema().WithItems(items).WithMinItems(1), nil
	default:
		return nil, fmt.Errorf("openapi: field %q has unsupported kind %q", field.Name, field.Kind)
	}
}

func pageResponse(description string) *openapi3.ResponseRef {
	content := openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{mediaTypeHTML})
	content[mediaTypeJSON] = openapi3.NewMediaType().WithSchema(ResultSchema())
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription(description).WithContent(content),
	}
}

func optionValues(options []model.Option) []any {
	out := make([]any, 0, len(options))
	for _, option := range options {
		out = append(out, option.Value)
	}
	return out
}

var ruleFields = map[string]string{
	model.FieldEmail:           "email",
	model.FieldPassword:        "password",
	model.FieldConfirmPassword: "confirm-password",
	model.FieldFirstName:       "names",
	model.FieldLastName:        "names",
	model.FieldRole:            "role",
	model.FieldTerms:           "terms",
	model.FieldAcquisition:     "acquisition",
}

func messageFor(field string) string {
	name, ok := ruleFields[field]
	if !ok {
		return ""
	}
	for _, rule := range signup.Rules() {
		if rule.Name == name {
			return rule.Message
		}
	}
	return ""
}
