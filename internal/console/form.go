package console

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"creativehub/internal/client"
	"creativehub/internal/util"

	"github.com/pkg/errors"
)

// Kind decides how a raw draft value is coerced into the request payload.
type Kind int

const (
	KindText Kind = iota
	// KindOptionalText sends null when empty.
	KindOptionalText
	KindNumber
	KindInteger
	// KindOptionalNumber sends null when empty.
	KindOptionalNumber
	KindBool
	// KindList is a comma separated list of strings.
	KindList
)

// Pattern is a format check applied to non-empty values.
type Pattern int

const (
	PatternNone Pattern = iota
	PatternEmail
	PatternPhone
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// Field describes one editable key of an entity.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Default  string
	Required bool
	MinLen   int
	Pattern  Pattern
	Enum     []string
	// WriteOnly fields are never hydrated and are left out of an edit when blank.
	WriteOnly bool
	// CreateOnly fields are left out of update payloads.
	CreateOnly bool
}

func (f Field) initial() string {
	switch {
	case f.Default != "":
		return f.Default
	case f.Kind == KindNumber || f.Kind == KindInteger:
		return "0"
	case f.Kind == KindBool:
		return "false"
	default:
		return ""
	}
}

func (f Field) label() string {
	if f.Label != "" {
		return f.Label
	}

	return f.Name
}

// Schema is the editable shape of one resource.
type Schema struct {
	Fields []Field
	// SlugSource is the field a slug is derived from, usually "title" or "name".
	SlugSource string
}

const slugField = "slug"

// Field looks a field up by name.
func (s Schema) Field(name string) (Field, bool) {
	i := slices.IndexFunc(s.Fields, func(f Field) bool { return f.Name == name })
	if i < 0 {
		return Field{}, false
	}

	return s.Fields[i], true
}

// FieldError is one failed client-side check.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every failed check of a draft.
type ValidationError []FieldError

func (v ValidationError) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Message
	}

	return strings.Join(msgs, "; ")
}

// Mode is create or edit.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Store is the slice of the resource client a form needs.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, payload any) (T, error)
	Update(ctx context.Context, id string, payload any) (T, error)
}

// FormOptions configures a FormController.
type FormOptions struct {
	Noun     string
	Notifier Notifier
}

// FormController owns the draft of one create or edit form.
type FormController[T any] struct {
	store    Store[T]
	schema   Schema
	noun     string
	notifier Notifier

	mu          sync.Mutex
	id          string
	draft       map[string]string
	slugTouched bool
}

// NewFormController returns a form in create mode with every field at its default.
func NewFormController[T any](store Store[T], schema Schema, opts FormOptions) *FormController[T] {
	if opts.Notifier == nil {
		opts.Notifier = NewRecorder()
	}
	if opts.Noun == "" {
		opts.Noun = "Item"
	}
	fc := &FormController[T]{store: store, schema: schema, noun: opts.Noun, notifier: opts.Notifier}
	fc.reset()

	return fc
}

func (fc *FormController[T]) reset() {
	fc.id = ""
	fc.slugTouched = false
	fc.draft = make(map[string]string, len(fc.schema.Fields))
	for _, f := range fc.schema.Fields {
		fc.draft[f.Name] = f.initial()
	}
}

// Open switches the form to edit mode for id and hydrates the draft, or back to create mode
// when id is empty. A failed fetch is notified and leaves the form in create mode.
func (fc *FormController[T]) Open(ctx context.Context, id string) error {
	fc.mu.Lock()
	fc.reset()
	fc.mu.Unlock()

	if id == "" {
		return nil
	}

	item, err := fc.store.Get(ctx, id)
	if err != nil {
		fc.notifier.Error(client.Message(err, fmt.Sprintf("Failed to load %s", strings.ToLower(fc.noun))))

		return err
	}

	values, err := draftValues(item)
	if err != nil {
		return err
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.id = id
	for _, f := range fc.schema.Fields {
		if f.WriteOnly {
			continue
		}
		if v, ok := values[f.Name]; ok {
			fc.draft[f.Name] = formatValue(v)
		}
	}
	// an existing slug is never silently re-derived
	fc.slugTouched = true

	return nil
}

// Mode reports whether the form creates or edits.
func (fc *FormController[T]) Mode() Mode {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if fc.id == "" {
		return ModeCreate
	}

	return ModeEdit
}

// Set writes one raw value. Writing the slug source re-derives the slug until the slug is set directly.
func (fc *FormController[T]) Set(name, value string) error {
	f, ok := fc.schema.Field(name)
	if !ok {
		return errors.Errorf("unknown field %q", name)
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.draft[f.Name] = value
	if f.Name == slugField {
		fc.slugTouched = true
	}
	if f.Name == fc.schema.SlugSource && !fc.slugTouched {
		if _, hasSlug := fc.draft[slugField]; hasSlug {
			fc.draft[slugField] = util.Slugify(value)
		}
	}

	return nil
}

// Value returns one raw draft value.
func (fc *FormController[T]) Value(name string) string {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	return fc.draft[name]
}

// Draft returns a copy of the raw draft.
func (fc *FormController[T]) Draft() map[string]string {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	return maps.Clone(fc.draft)
}

// Validate runs the client-side checks. The server remains the authority.
func (fc *FormController[T]) Validate() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	return fc.validate()
}

func (fc *FormController[T]) validate() error {
	var errs ValidationError
	editing := fc.id != ""

	for _, f := range fc.schema.Fields {
		raw := strings.TrimSpace(fc.draft[f.Name])
		if raw == "" {
			if f.Required && !(editing && f.WriteOnly) {
				errs = append(errs, FieldError{Field: f.Name, Message: f.label() + " is required"})
			}

			continue
		}

		if f.MinLen > 0 && len([]rune(raw)) < f.MinLen {
			errs = append(errs, FieldError{f.Name, fmt.Sprintf("%s must be at least %d characters", f.label(), f.MinLen)})
		}
		switch f.Pattern {
		case PatternEmail:
			if !emailPattern.MatchString(raw) {
				errs = append(errs, FieldError{f.Name, "Please enter a valid email address"})
			}
		case PatternPhone:
			if n := util.DigitCount(raw); n < minPhoneDigits || n > maxPhoneDigits {
				errs = append(errs, FieldError{f.Name, fmt.Sprintf("%s must have %d to %d digits", f.label(), minPhoneDigits, maxPhoneDigits)})
			}
		}
		if len(f.Enum) > 0 && !slices.Contains(f.Enum, raw) {
			errs = append(errs, FieldError{f.Name, fmt.Sprintf("%s must be one of %s", f.label(), strings.Join(f.Enum, ", "))})
		}
		if _, err := coerce(f, raw); err != nil {
			errs = append(errs, FieldError{f.Name, err.Error()})
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// Payload assembles the request body from the draft.
func (fc *FormController[T]) Payload() (map[string]any, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	return fc.payload()
}

func (fc *FormController[T]) payload() (map[string]any, error) {
	editing := fc.id != ""
	out := make(map[string]any, len(fc.schema.Fields))

	for _, f := range fc.schema.Fields {
		raw := strings.TrimSpace(fc.draft[f.Name])
		if editing && (f.CreateOnly || (f.WriteOnly && raw == "")) {
			continue
		}
		v, err := coerce(f, raw)
		if err != nil {
			return nil, err
		}
		out[f.Name] = v
	}

	return out, nil
}

func coerce(f Field, raw string) (any, error) {
	switch f.Kind {
	case KindNumber, KindOptionalNumber:
		if raw == "" {
			if f.Kind == KindOptionalNumber {
				return nil, nil
			}

			return float64(0), nil
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Errorf("%s must be a number", f.label())
		}

		return n, nil
	case KindInteger:
		if raw == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Errorf("%s must be a whole number", f.label())
		}

		return n, nil
	case KindBool:
		if raw == "" {
			return false, nil
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Errorf("%s must be true or false", f.label())
		}

		return b, nil
	case KindList:
		items := []string{}
		for part := range strings.SplitSeq(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}

		return items, nil
	case KindOptionalText:
		if raw == "" {
			return nil, nil
		}

		return raw, nil
	default:
		return raw, nil
	}
}

// Submit validates, coerces and sends the draft with one Create or Update. On any failure the
// draft is left exactly as it was.
func (fc *FormController[T]) Submit(ctx context.Context) (T, error) {
	var zero T

	fc.mu.Lock()
	id := fc.id
	if err := fc.validate(); err != nil {
		fc.mu.Unlock()
		fc.notifier.Error(err.(ValidationError)[0].Message)

		return zero, err
	}
	payload, err := fc.payload()
	fc.mu.Unlock()
	if err != nil {
		fc.notifier.Error(err.Error())

		return zero, err
	}

	var item T
	if id == "" {
		item, err = fc.store.Create(ctx, payload)
	} else {
		item, err = fc.store.Update(ctx, id, payload)
	}
	if err != nil {
		fc.notifier.Error(client.Message(err, fmt.Sprintf("Failed to save %s", strings.ToLower(fc.noun))))

		return zero, err
	}

	if id == "" {
		fc.notifier.Success(fc.noun + " created successfully")
	} else {
		fc.notifier.Success(fc.noun + " updated successfully")
	}

	return item, nil
}

func draftValues(item any) (map[string]any, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, errors.Wrap(err, "encode entity for editing")
	}
	values := map[string]any{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, errors.Wrap(err, "decode entity for editing")
	}

	return values, nil
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, formatValue(e))
		}

		return strings.Join(parts, ", ")
	default:
		raw, _ := json.Marshal(t)

		return string(raw)
	}
}
