package entity

import (
	"reflect"
	"strings"
	"sync"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func payloadValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON names.
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})
	})

	return validate
}

func missingPayload() error {
	return domainerrors.ErrBadRequest.WithDetails("payload is required")
}

// validatePayload checks the validate tags of payload and reports the first
// violation as ErrBadRequest.
func validatePayload(payload any) error {
	err := payloadValidator().Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domainerrors.ErrBadRequest.WithDetails(err.Error())
	}

	fieldErr := fieldErrs[0]
	details := fieldErr.Field() + " failed on " + fieldErr.Tag()
	if fieldErr.Param() != "" {
		details += "=" + fieldErr.Param()
	}

	return domainerrors.ErrBadRequest.WithDetails(details)
}

// Validate checks the payload, ignoring surrounding whitespace.
func (p *UserCreate) Validate() error {
	if p == nil {
		return missingPayload()
	}

	trimmed := UserCreate{
		Email:    strings.TrimSpace(p.Email),
		Name:     trimSpace(p.Name),
		Password: strings.TrimSpace(p.Password),
	}

	return validatePayload(&trimmed)
}

// Validate checks the set fields of the payload.
func (p *UserUpdate) Validate() error {
	return validatePayload(&UserUpdate{Name: trimSpace(p.Name), Password: p.Password})
}

// Validate checks the payload, ignoring surrounding whitespace.
func (p *ContactCreate) Validate() error {
	if p == nil {
		return missingPayload()
	}

	return validatePayload(&ContactCreate{
		PhoneNumber: trimSpace(p.PhoneNumber),
		Telegram:    trimSpace(p.Telegram),
		LinkedIn:    trimSpace(p.LinkedIn),
	})
}

// Validate checks the set fields of the payload.
func (p *ContactUpdate) Validate() error {
	return validatePayload(&ContactUpdate{
		PhoneNumber: trimSpace(p.PhoneNumber),
		Telegram:    trimSpace(p.Telegram),
		LinkedIn:    trimSpace(p.LinkedIn),
	})
}

// Validate checks the payload, ignoring surrounding whitespace.
func (p *GroupCreate) Validate() error {
	if p == nil {
		return missingPayload()
	}

	trimmed := *p
	trimmed.Name = strings.TrimSpace(p.Name)
	trimmed.Description = trimSpace(p.Description)

	return validatePayload(&trimmed)
}

// Validate checks the set fields of the payload.
func (p *GroupUpdate) Validate() error {
	return validatePayload(&GroupUpdate{
		Name:        trimSpace(p.Name),
		Description: trimSpace(p.Description),
		IsPrivate:   p.IsPrivate,
	})
}

// Validate only requires the payload; unknown groups and users surface from storage.
func (p *MemberCreate) Validate() error {
	if p == nil {
		return missingPayload()
	}

	return nil
}

func trimSpace(s *string) *string {
	if s == nil {
		return nil
	}

	v := strings.TrimSpace(*s)

	return &v
}
