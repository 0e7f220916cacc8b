package server

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	maxGameIDLength   = 32
	maxChoiceIDLength = 64
)

var validatorOnce sync.Once

func registerValidators() {
	validatorOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("gameid", func(fl validator.FieldLevel) bool {
			_, err := validateGameID(fl.Field().String())
			return err == nil
		})
		_ = engine.RegisterValidation("choice", func(fl validator.FieldLevel) bool {
			_, err := validateChoice(fl.Field().String())
			return err == nil
		})
	})
}

// validateGameID accepts lowercase slugs such as "color-splash".
func validateGameID(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errors.New("game_id is required")
	}
	if len(trimmed) > maxGameIDLength {
		return "", fmt.Errorf("game_id must be %d characters or fewer", maxGameIDLength)
	}
	for _, r := range trimmed {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			continue
		}
		return "", errors.New("game_id contains unsupported characters")
	}
	return trimmed, nil
}

func validateChoice(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errors.New("choice_id is required")
	}
	if len(trimmed) > maxChoiceIDLength {
		return "", fmt.Errorf("choice_id must be %d characters or fewer", maxChoiceIDLength)
	}
	if !isSafeText(trimmed) {
		return "", errors.New("choice_id contains unsupported characters")
	}
	return trimmed, nil
}

func isSafeText(text string) bool {
	for _, r := range text {
		if r > 127 {
			return false
		}
		if r >= 'a' && r <= 'z' {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			continue
		}
		if r >= '0' && r <= '9' {
			continue
		}
		switch r {
		case ' ', '-', '_':
			continue
		default:
			return false
		}
	}
	return true
}
