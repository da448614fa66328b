// Package form holds the user and post forms and their validation rules.
package form

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// emailPattern is a loose shape check, not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors maps a form field to its first failing message.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = e[f]
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return f.Tag.Get("form")
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// check validates s and translates failures with messages, keyed by
// "field" for the field's first failing tag.
func check(s any, messages map[string]map[string]string) Errors {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"": err.Error()}
	}

	out := Errors{}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		out[field] = msg
	}
	return out
}
