package client

import (
	"backend/internal/uimeta"
	"errors"
	"fmt"
	"strings"
)

// PickState is an explicit snapshot of a dictionary pick in progress: which
// form field is being filled and from which dictionary view. The form is
// suspended, not discarded, while the pick runs.
type PickState struct {
	FieldKey   string
	Controller string
}

// Form is the view-model of an add/edit form built from a descriptor. An
// edit form is prefilled from the row being edited.
type Form struct {
	view   uimeta.Descriptor
	values map[string]string
	labels map[string]string
	id     string
	pick   *PickState

	submitting bool
}

// NewForm builds an empty add form, applying field defaults
func NewForm(d uimeta.Descriptor) *Form {
	f := &Form{view: d, values: make(map[string]string), labels: make(map[string]string)}
	for _, ff := range d.Add {
		if ff.Default != "" {
			f.values[ff.Key] = ff.Default
		}
	}
	return f
}

// NewEditForm builds a form prefilled from an existing row. Dictionary
// fields take their display label from the row's joined "<name>_name" cell.
func NewEditForm(d uimeta.Descriptor, row Row) *Form {
	f := NewForm(d)
	f.id = cellString(row["id"])
	for _, ff := range d.Add {
		if v, ok := row[ff.Key]; ok {
			f.values[ff.Key] = cellString(v)
		}
		if ff.Type == uimeta.TypeDictionary {
			labelKey := strings.TrimSuffix(ff.Key, "_id") + "_name"
			if label, ok := row[labelKey]; ok {
				f.labels[ff.Key] = cellString(label)
			}
		}
	}
	return f
}

// IsEdit reports whether submitting will update an existing record
func (f *Form) IsEdit() bool { return f.id != "" }

// Fields returns the form's input descriptors in declaration order
func (f *Form) Fields() uimeta.Form { return f.view.Add }

// Set stores a value for a declared field
func (f *Form) Set(key, value string) error {
	if _, ok := f.view.Add.Get(key); !ok {
		return fmt.Errorf("поле %q не объявлено в форме", key)
	}
	f.values[key] = value
	return nil
}

// Get returns the stored value of a field
func (f *Form) Get(key string) string { return f.values[key] }

// Label returns the display label of a dictionary field's chosen value
func (f *Form) Label(key string) string { return f.labels[key] }

// StartPick suspends the form and opens a dictionary pick for the field.
// Only one pick may run at a time.
func (f *Form) StartPick(key string) (*PickState, error) {
	if f.pick != nil {
		return nil, errors.New("выбор из справочника уже открыт")
	}
	field, ok := f.view.Add.Get(key)
	if !ok {
		return nil, fmt.Errorf("поле %q не объявлено в форме", key)
	}
	if field.Type != uimeta.TypeDictionary {
		return nil, fmt.Errorf("поле %q не является справочником", key)
	}
	f.pick = &PickState{FieldKey: key, Controller: field.Controller}
	return f.pick, nil
}

// Pick returns the pick in progress, nil when none
func (f *Form) Pick() *PickState { return f.pick }

// CompletePick stores the chosen id and its display label, resuming the form
func (f *Form) CompletePick(id, label string) {
	if f.pick == nil {
		return
	}
	f.values[f.pick.FieldKey] = id
	f.labels[f.pick.FieldKey] = label
	f.pick = nil
}

// CancelPick abandons the pick, leaving the field untouched
func (f *Form) CancelPick() { f.pick = nil }

// Params collects the values to submit
func (f *Form) Params() map[string]string {
	params := make(map[string]string, len(f.values)+1)
	for k, v := range f.values {
		params[k] = v
	}
	if f.id != "" {
		params["id"] = f.id
	}
	return params
}

// Submit sends the form, as an update when prefilled from a row. A submit
// already in flight is rejected instead of being sent twice.
func (f *Form) Submit(c *Client) (*Result, error) {
	if f.submitting {
		return nil, errors.New("форма уже отправляется")
	}
	if f.pick != nil {
		return nil, errors.New("завершите выбор из справочника")
	}
	f.submitting = true
	defer func() { f.submitting = false }()

	if f.IsEdit() {
		return c.Update(f.view.Controller, f.Params())
	}
	return c.Add(f.view.Controller, f.Params())
}
