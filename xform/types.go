package xform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// Validator validates a single field value, returning an error when
// the value is invalid.
type Validator func(value any) error

// CrossFieldValidator validates across every field's current value at
// once.
type CrossFieldValidator func(values map[string]any) error

// Widget renders a field's input element. props carries whatever the
// caller's FieldDef.WidgetProps supplied, merged over the field's
// current value and name; a widget reads state to know the current
// value and calls state.SetFieldValue/ValidateField from whatever
// host-specific event handler the caller wires in via props — xform
// does not and cannot construct one itself, since the concrete event
// type (nodegraph.Event, domrender.Event, ...) is host-specific. See
// widgets.TextInput for the pattern.
type Widget func(r *renderer.R, state *State, fieldName string, props map[string]any) any

// FieldDef defines one field's identity, default value, validators
// and widget.
type FieldDef struct {
	Name         string
	Label        string
	InitialValue any
	Validators   []Validator
	Widget       Widget
	WidgetProps  map[string]any
}

// SubmissionHandler processes a form's values after validation passes.
type SubmissionHandler func(ctx context.Context, values map[string]any) error

// SubmissionOptions configures how State.Submit dispatches a
// successfully validated form.
type SubmissionOptions struct {
	URL     string
	Method  string
	Headers map[string]string
	Handler SubmissionHandler
}

// State holds a form's schema plus a reactive signal for every
// field's value and error, so anything reading them (a widget, an
// error display, UseIsValid) rerenders as the user types.
type State struct {
	schema                []FieldDef
	fieldValues           map[string]reactivity.Signal[any]
	fieldErrors           map[string]reactivity.Signal[error]
	globalError           reactivity.Signal[error]
	crossFieldValidators  []CrossFieldValidator
	submissionOptions     *SubmissionOptions
	isSubmitting          reactivity.Signal[bool]
	submissionError       reactivity.Signal[error]
}

// New creates form state from a schema, seeding every field's value
// signal with its InitialValue ("" when unset).
func New(schema []FieldDef) *State {
	s := &State{
		schema:      schema,
		fieldValues: make(map[string]reactivity.Signal[any]),
		fieldErrors: make(map[string]reactivity.Signal[error]),
		globalError: reactivity.CreateSignal[error](nil),
	}
	for _, field := range schema {
		initial := field.InitialValue
		if initial == nil {
			initial = ""
		}
		s.fieldValues[field.Name] = reactivity.CreateSignal[any](initial)
		s.fieldErrors[field.Name] = reactivity.CreateSignal[error](nil)
	}
	s.isSubmitting = reactivity.CreateSignal(false)
	s.submissionError = reactivity.CreateSignal[error](nil)
	return s
}

// Values returns every field's current value.
func (s *State) Values() map[string]any {
	values := make(map[string]any, len(s.fieldValues))
	for name, sig := range s.fieldValues {
		values[name] = sig.Get()
	}
	return values
}

// GetFieldValue returns fieldName's current value, or nil if no such
// field exists.
func (s *State) GetFieldValue(fieldName string) any {
	if sig, ok := s.fieldValues[fieldName]; ok {
		return sig.Get()
	}
	return nil
}

// SetFieldValue sets fieldName's value. A no-op for an unknown field.
func (s *State) SetFieldValue(fieldName string, value any) {
	if sig, ok := s.fieldValues[fieldName]; ok {
		sig.Set(value)
	}
}

// GetFieldError returns fieldName's current validation error.
func (s *State) GetFieldError(fieldName string) error {
	if sig, ok := s.fieldErrors[fieldName]; ok {
		return sig.Get()
	}
	return nil
}

// SetFieldError sets fieldName's validation error directly.
func (s *State) SetFieldError(fieldName string, err error) {
	if sig, ok := s.fieldErrors[fieldName]; ok {
		sig.Set(err)
	}
}

// GetGlobalError returns the form-wide error, if any.
func (s *State) GetGlobalError() error { return s.globalError.Get() }

// SetGlobalError sets the form-wide error.
func (s *State) SetGlobalError(err error) { s.globalError.Set(err) }

func (s *State) fieldDef(fieldName string) *FieldDef {
	for i := range s.schema {
		if s.schema[i].Name == fieldName {
			return &s.schema[i]
		}
	}
	return nil
}

// ValidateField runs fieldName's validators against its current
// value, recording the first failure (or clearing it, on success) in
// its error signal.
func (s *State) ValidateField(fieldName string) error {
	def := s.fieldDef(fieldName)
	if def == nil {
		return nil
	}
	value := s.GetFieldValue(fieldName)
	for _, validate := range def.Validators {
		if err := validate(value); err != nil {
			s.SetFieldError(fieldName, err)
			return err
		}
	}
	s.SetFieldError(fieldName, nil)
	return nil
}

// Validate runs ValidateField over every field in the schema.
func (s *State) Validate() bool {
	valid := true
	for _, field := range s.schema {
		if err := s.ValidateField(field.Name); err != nil {
			valid = false
		}
	}
	return valid
}

// AddCrossFieldValidator registers a validator run across all fields
// during ValidateWithCrossField.
func (s *State) AddCrossFieldValidator(v CrossFieldValidator) {
	s.crossFieldValidators = append(s.crossFieldValidators, v)
}

// ValidateWithCrossField runs per-field validation followed by every
// registered cross-field validator, stopping at (and recording as the
// global error) the first cross-field failure.
func (s *State) ValidateWithCrossField() bool {
	valid := s.Validate()
	values := s.Values()
	for _, validate := range s.crossFieldValidators {
		if err := validate(values); err != nil {
			s.SetGlobalError(err)
			return false
		}
	}
	return valid
}

// GetSchema returns the form's field definitions.
func (s *State) GetSchema() []FieldDef { return s.schema }

// GetFieldDef returns fieldName's definition, or nil.
func (s *State) GetFieldDef(fieldName string) *FieldDef { return s.fieldDef(fieldName) }

// SetSubmissionOptions configures how Submit dispatches validated
// values.
func (s *State) SetSubmissionOptions(opts SubmissionOptions) { s.submissionOptions = &opts }

// IsSubmitting reports whether a Submit call is currently in flight.
func (s *State) IsSubmitting() bool { return s.isSubmitting.Get() }

// GetSubmissionError returns the last Submit failure, if any.
func (s *State) GetSubmissionError() error { return s.submissionError.Get() }

// Submit validates the form and, on success, dispatches it through
// the configured SubmissionOptions.
func (s *State) Submit(ctx context.Context) error {
	if s.IsSubmitting() {
		return errors.New("xform: submission already in progress")
	}
	s.submissionError.Set(nil)
	s.isSubmitting.Set(true)
	defer s.isSubmitting.Set(false)

	if !s.ValidateWithCrossField() {
		err := errors.New("xform: validation failed")
		s.submissionError.Set(err)
		return err
	}

	if s.submissionOptions == nil {
		err := errors.New("xform: no submission options configured")
		s.submissionError.Set(err)
		return err
	}

	values := s.Values()
	var err error
	switch {
	case s.submissionOptions.Handler != nil:
		err = s.submissionOptions.Handler(ctx, values)
	case s.submissionOptions.URL != "":
		err = s.submitHTTP(ctx, values)
	default:
		err = errors.New("xform: no submission handler or URL configured")
	}
	if err != nil {
		s.submissionError.Set(err)
		return err
	}
	return nil
}

func (s *State) submitHTTP(ctx context.Context, values map[string]any) error {
	body, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("xform: marshal form data: %w", err)
	}
	method := s.submissionOptions.Method
	if method == "" {
		method = http.MethodPost
	}
	req, err := http.NewRequestWithContext(ctx, method, s.submissionOptions.URL, strings.NewReader(string(body)))
	if err != nil {
		return fmt.Errorf("xform: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range s.submissionOptions.Headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("xform: submit: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("xform: submission failed with status %d", resp.StatusCode)
	}
	return nil
}

// Reset restores every field to its InitialValue and clears all
// errors.
func (s *State) Reset() {
	for _, field := range s.schema {
		initial := field.InitialValue
		if initial == nil {
			initial = ""
		}
		s.SetFieldValue(field.Name, initial)
		s.SetFieldError(field.Name, nil)
	}
	s.SetGlobalError(nil)
	s.submissionError.Set(nil)
}
