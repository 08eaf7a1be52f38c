package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nibzard/tasklist/internal/logging"
)

// FieldError reports an invalid configuration value.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Validate checks the values that the widget cannot fall back from.
// All problems are joined into one error.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, &FieldError{Field: "title", Err: errors.New("must not be empty")})
	}
	if !c.DefaultPriority.Valid() {
		errs = append(errs, &FieldError{Field: "default_priority", Err: fmt.Errorf("invalid value %d", int(c.DefaultPriority))})
	}

	colors := []struct {
		field string
		value string
	}{
		{"colors.low", c.Colors.Low},
		{"colors.medium", c.Colors.Medium},
		{"colors.high", c.Colors.High},
		{"colors.completed", c.Colors.Completed},
	}
	for _, col := range colors {
		if !validColor(col.value) {
			errs = append(errs, &FieldError{Field: col.field, Err: fmt.Errorf("invalid color %q (want #rgb, #rrggbb or 0-255)", col.value)})
		}
	}

	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, &FieldError{Field: "log_level", Err: fmt.Errorf("invalid level %q", c.LogLevel)})
	}
	if !logging.ValidFormat(c.LogFormat) {
		errs = append(errs, &FieldError{Field: "log_format", Err: fmt.Errorf("invalid format %q", c.LogFormat)})
	}

	errs = append(errs, c.Keys.validate()...)

	return errors.Join(errs...)
}

type keyBinding struct {
	name string
	keys []string
}

func (k KeysConfig) listBindings() []keyBinding {
	return []keyBinding{
		{"up", k.Up},
		{"down", k.Down},
		{"toggle", k.Toggle},
		{"raise", k.Raise},
		{"lower", k.Lower},
		{"move_up", k.MoveUp},
		{"move_down", k.MoveDown},
		{"delete", k.Delete},
		{"focus", k.Focus},
		{"help", k.Help},
		{"quit", k.Quit},
	}
}

func (k KeysConfig) inputBindings() []keyBinding {
	return []keyBinding{
		{"submit", k.Submit},
		{"cycle_priority", k.CyclePriority},
		{"blur", k.Blur},
	}
}

// validate requires every action to have a key and rejects keys bound to two
// actions of the same focus. ctrl+c is reserved for quitting.
func (k KeysConfig) validate() []error {
	var errs []error
	for _, group := range [][]keyBinding{k.listBindings(), k.inputBindings()} {
		owner := map[string]string{}
		for _, b := range group {
			if len(b.keys) == 0 {
				errs = append(errs, &FieldError{Field: "keys." + b.name, Err: errors.New("no keys bound")})
				continue
			}
			for _, key := range b.keys {
				if key == "ctrl+c" {
					errs = append(errs, &FieldError{Field: "keys." + b.name, Err: errors.New("ctrl+c is reserved")})
					continue
				}
				if prev, ok := owner[key]; ok && prev != b.name {
					errs = append(errs, &FieldError{Field: "keys." + b.name, Err: fmt.Errorf("key %q already bound to %s", key, prev)})
					continue
				}
				owner[key] = b.name
			}
		}
	}
	return errs
}

func validColor(s string) bool {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
