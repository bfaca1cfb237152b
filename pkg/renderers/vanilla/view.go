package vanilla

import (
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/state"
)

type pageView struct {
	Form  formView  `json:"form"`
	Theme themeView `json:"theme"`
}

type formView struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	IntroHTML   string               `json:"intro_html,omitempty"`
	Action      string               `json:"action,omitempty"`
	ResetAction string               `json:"reset_action,omitempty"`
	SubmitLabel string               `json:"submit_label"`
	ResetLabel  string               `json:"reset_label"`
	Pending     bool                 `json:"pending"`
	Hidden      []render.HiddenField `json:"hidden,omitempty"`
	Rows        []rowView            `json:"rows"`
	Errors      []string             `json:"errors,omitempty"`
}

type rowView struct {
	Separator bool          `json:"separator"`
	Multi     bool          `json:"multi"`
	Controls  []controlView `json:"controls"`
}

type controlView struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Label   string       `json:"label"`
	Kind    string       `json:"kind"`
	Value   string       `json:"value,omitempty"`
	Checked bool         `json:"checked"`
	Options []optionView `json:"options,omitempty"`
}

type optionView struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

func buildFormView(form model.Form, snapshot state.Snapshot, opts render.RenderOptions) formView {
	entered := snapshot.Entered()
	view := formView{
		ID:          form.ID,
		Title:       form.Title,
		IntroHTML:   sanitizeIntro(form.Intro),
		Action:      opts.Action,
		ResetAction: opts.ResetAction,
		SubmitLabel: form.SubmitLabel,
		ResetLabel:  form.ResetLabel,
		Pending:     snapshot.Pending,
		Hidden:      render.SortedHiddenFields(opts.Hidden),
		Errors:      render.NormalizeMessages(snapshot.Result.Errors),
	}

	currentRow := ""
	for _, field := range form.Fields {
		control := buildControl(field, entered)
		last := len(view.Rows) - 1
		if last >= 0 && field.Row != "" && field.Row == currentRow && !field.Separator {
			view.Rows[last].Controls = append(view.Rows[last].Controls, control)
			continue
		}
		view.Rows = append(view.Rows, rowView{
			Separator: field.Separator,
			Multi:     field.Row != "",
			Controls:  []controlView{control},
		})
		currentRow = field.Row
	}
	return view
}

func buildControl(field model.Field, entered model.Values) controlView {
	control := controlView{
		ID:    field.Name,
		Name:  field.Name,
		Label: field.Label,
		Kind:  string(field.Kind),
	}

	switch field.Kind {
	case model.FieldKindCheckbox:
		if field.Name == model.FieldTerms {
			control.ID = "terms-and-conditions"
			control.Checked = entered.Terms
		}
	case model.FieldKindCheckboxGroup:
		for _, option := range field.Options {
			control.Options = append(control.Options, optionView{
				ID:       field.Name + "-" + option.Value,
				Value:    option.Value,
				Label:    option.Label,
				Selected: field.Name == model.FieldAcquisition && entered.HasAcquisition(option.Value),
			})
		}
	case model.FieldKindSelect:
		selected := entered.Text(field.Name)
		if selected == "" && len(field.Options) > 0 {
			selected = field.Options[0].Value
		}
		for _, option := range field.Options {
			control.Options = append(control.Options, optionView{
				ID:       field.Name + "-" + option.Value,
				Value:    option.Value,
				Label:    option.Label,
				Selected: option.Value == selected,
			})
		}
	default:
		control.Value = entered.Text(field.Name)
	}
	return control
}
