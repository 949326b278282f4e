// Package validation runs ordered, per-field predicate chains over decoded
// request bodies and collects every failure as a FieldError.
package validation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Input is a decoded request body keyed by wire field name. Validate applies
// defaults and trimming to it in place.
type Input map[string]any

// FieldError is one failed check: the offending value, the message and the
// field name.
type FieldError struct {
	Value any    `json:"value"`
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

// Predicate reports whether v passes. A non-nil error aborts validation.
type Predicate func(ctx context.Context, v any) (bool, error)

// Check is a predicate and the message reported when it fails.
type Check struct {
	Fn   Predicate
	Msg  string
	Msgf func(v any) string

	// Bail stops evaluating the remaining checks of the field on failure.
	Bail bool
}

func (c Check) message(v any) string {
	if c.Msgf != nil {
		return c.Msgf(v)
	}
	return c.Msg
}

// Rule is the check chain of a single field.
type Rule struct {
	Param string

	// Default supplies a value when the field is missing, null or "".
	Default func(in Input) any

	// Trim makes the field text: numbers and booleans are replaced by their
	// string form and surrounding whitespace is stripped before checking.
	Trim bool

	// Redact hides the submitted value in reported errors.
	Redact bool

	Checks []Check
}

// Ruleset is an ordered list of field rules. Rules run in order so a
// Default may depend on fields normalised by earlier rules.
type Ruleset []Rule

// Validate runs every rule against in and returns all failures across all
// fields. An empty result means the input is valid.
func (rs Ruleset) Validate(ctx context.Context, in Input) ([]FieldError, error) {
	var errs []FieldError

	for _, rule := range rs {
		v, ok := in[rule.Param]
		if (!ok || isBlank(v)) && rule.Default != nil {
			v = rule.Default(in)
			in[rule.Param] = v
		}
		if rule.Trim {
			if s, isText := asText(v); isText {
				v = strings.TrimSpace(s)
				in[rule.Param] = v
			}
		}

		for _, check := range rule.Checks {
			passed, err := check.Fn(ctx, v)
			if err != nil {
				return nil, fmt.Errorf("validation: %s: %w", rule.Param, err)
			}
			if passed {
				continue
			}

			value := v
			if rule.Redact {
				value = ""
			}
			errs = append(errs, FieldError{Value: value, Msg: check.message(v), Param: rule.Param})

			if check.Bail {
				break
			}
		}
	}

	return errs, nil
}

// String returns the field as a string, or "" when it is missing or not
// a string.
func (in Input) String(key string) string {
	s, _ := in[key].(string)
	return s
}

// Bool returns the field as a bool, or def when it is not a bool.
func (in Input) Bool(key string, def bool) bool {
	if b, ok := in[key].(bool); ok {
		return b
	}
	return def
}

// Text returns the string form of a scalar field, so numeric JSON values
// such as a renavam are kept as digits.
func (in Input) Text(key string) string {
	return toString(in[key])
}

func asText(v any) (string, bool) {
	switch v.(type) {
	case string, float64, json.Number, bool:
		return toString(v), true
	}
	return "", false
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
