// Package validators registers the custom binding tags used by request DTOs.
package validators

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/expohub/expohub/internal/domain/shared/services"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
)

const (
	TagSlug   = "slug"
	TagRating = "rating"
)

// maxSlugParamLength covers MaxSlugLength plus a numeric suffix.
const maxSlugParamLength = services.MaxSlugLength + 8

var registerOnce sync.Once

// Register installs the custom tags on gin's validator engine. It is safe to
// call more than once.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = RegisterOn(v)
	})
	return err
}

// RegisterOn installs the custom tags on v.
func RegisterOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		TagSlug:   validateSlug,
		TagRating: validateRating,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register validation tag %q: %w", tag, err)
		}
	}
	return nil
}

// IsSlug reports whether s is made of [a-z0-9] runs joined by single dashes.
func IsSlug(s string) bool {
	if s == "" || len(s) > maxSlugParamLength {
		return false
	}
	prevDash := true
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			prevDash = false
		case ch == '-':
			if prevDash {
				return false
			}
			prevDash = true
		default:
			return false
		}
	}
	return !prevDash
}

func validateSlug(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return IsSlug(value)
}

func validateRating(fl validator.FieldLevel) bool {
	score := fl.Field().Int()
	return score >= svo.MinReviewScore && score <= svo.MaxReviewScore
}
