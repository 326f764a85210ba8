package schema

import "github.com/heartmarshall/netscheme-backend/internal/domain"

// BusinessConfig is a keyed business rule such as the mandatory fields for
// a message type or the list of supported product types.
type BusinessConfig struct {
	ConfigType  string `json:"config_type" validate:"required,max=64"`
	ConfigKey   string `json:"key" validate:"required,max=128"`
	Value       any    `json:"value"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`

	extra domain.Payload
}

// Key is config_type and key joined by a slash.
func (b *BusinessConfig) Key() string { return b.ConfigType + "/" + b.ConfigKey }

func (b *BusinessConfig) Extra() domain.Payload { return b.extra }

func (b *BusinessConfig) setExtra(p domain.Payload) { b.extra = p }

func (b *BusinessConfig) check() []domain.FieldError {
	if b.Value == nil {
		return []domain.FieldError{{Field: "value", Message: "required"}}
	}
	return nil
}
