// Package schema holds the per-entity-type payload schemas for governed
// entities. A Registry maps an entity-type tag to the typed spec that
// validates its payload and derives its identifying key.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

// Spec is a decoded, typed payload. Extra holds fields the schema does not
// know about; they are carried through untouched.
type Spec interface {
	Key() string
	Extra() domain.Payload
}

// checker is implemented by specs with rules struct tags cannot express.
type checker interface {
	check() []domain.FieldError
}

// Definition registers one governed entity type.
type Definition struct {
	Type domain.EntityType
	// New returns a pointer to an empty spec value for decoding.
	New func() Spec
}

// Registry resolves entity-type tags to their definitions.
type Registry struct {
	mu       sync.RWMutex
	defs     map[domain.EntityType]entry
	validate *validator.Validate
}

type entry struct {
	def   Definition
	known map[string]struct{}
}

// NewRegistry returns a registry with the built-in governed types registered.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.Register(Definition{Type: domain.EntityTypeConnection, New: func() Spec { return &Connection{} }})
	r.Register(Definition{Type: domain.EntityTypeBusinessConfig, New: func() Spec { return &BusinessConfig{} }})
	return r
}

// NewEmptyRegistry returns a registry with no types registered.
func NewEmptyRegistry() *Registry {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Registry{
		defs:     make(map[domain.EntityType]entry),
		validate: v,
	}
}

// Register adds or replaces a definition.
func (r *Registry) Register(def Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.Type] = entry{def: def, known: jsonFields(reflect.TypeOf(def.New()))}
}

// Types returns the registered entity types in sorted order.
func (r *Registry) Types() []domain.EntityType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.EntityType, 0, len(r.defs))
	for t := range r.defs {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// UnsupportedTypeError is the validation error for an entity type with no
// registered schema. It names the supported types.
func (r *Registry) UnsupportedTypeError(t domain.EntityType) error {
	types := r.Types()
	names := make([]string, len(types))
	for i, typ := range types {
		names[i] = string(typ)
	}
	return domain.NewValidationError("entity_type",
		fmt.Sprintf("unsupported entity type %q (supported: %s)", t, strings.Join(names, ", ")))
}

// Supports reports whether t is a governed entity type.
func (r *Registry) Supports(t domain.EntityType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.defs[t]
	return ok
}

// Decode validates payload against the schema registered for t and returns
// the typed spec. Failures are *domain.ValidationError.
func (r *Registry) Decode(t domain.EntityType, payload domain.Payload) (Spec, error) {
	r.mu.RLock()
	e, ok := r.defs[t]
	r.mu.RUnlock()
	if !ok {
		return nil, r.UnsupportedTypeError(t)
	}
	if len(payload) == 0 {
		return nil, domain.NewValidationError("new_data", "required")
	}

	spec := e.def.New()
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.NewValidationError("new_data", "not a JSON object")
	}
	if err := json.Unmarshal(raw, spec); err != nil {
		return nil, decodeError(err)
	}

	if err := r.validate.Struct(spec); err != nil {
		return nil, validationError(err)
	}
	if c, ok := spec.(checker); ok {
		if fields := c.check(); len(fields) > 0 {
			return nil, domain.NewValidationErrors(fields)
		}
	}

	if s, ok := payload.Status(); !ok && payload[domain.StatusKey] != nil {
		return nil, domain.NewValidationError(domain.StatusKey, fmt.Sprintf("invalid status %q", s))
	}

	if x, ok := spec.(interface{ setExtra(domain.Payload) }); ok {
		x.setExtra(extraFields(payload, e.known))
	}
	return spec, nil
}

// KeyOf validates payload and returns its identifying key.
func (r *Registry) KeyOf(t domain.EntityType, payload domain.Payload) (string, error) {
	spec, err := r.Decode(t, payload)
	if err != nil {
		return "", err
	}
	return spec.Key(), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "new_data"
		}
		return domain.NewValidationError(field, fmt.Sprintf("must be %s", typeErr.Type.Kind()))
	}
	return domain.NewValidationError("new_data", err.Error())
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("new_data", err.Error())
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: describe(fe),
		})
	}
	return domain.NewValidationErrors(fields)
}

// fieldPath drops the struct name prefix from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "ip":
		return "must be a valid IP address"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	case "numeric":
		return "must be numeric"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func jsonFields(t reflect.Type) map[string]struct{} {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := make(map[string]struct{}, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		out[name] = struct{}{}
	}
	out[domain.StatusKey] = struct{}{}
	return out
}

func extraFields(payload domain.Payload, known map[string]struct{}) domain.Payload {
	var extra domain.Payload
	for k, v := range payload {
		if _, ok := known[k]; ok {
			continue
		}
		if extra == nil {
			extra = domain.Payload{}
		}
		extra[k] = v
	}
	return extra
}
