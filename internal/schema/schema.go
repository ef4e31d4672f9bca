// Package schema validates untyped invoice request documents against an
// explicit field schema and decodes clean documents into model values.
//
// Validation is exhaustive: one pass over the document reports every
// missing field, type mismatch, malformed date, and violated rule, so the
// caller can surface precise field-level diagnostics. Unknown extra fields
// are ignored.
package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rezonia/df-accountant/internal/model"
)

// Kind enumerates the value types a schema field may hold.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindDecimal
	KindBool
	KindDate
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindDecimal:
		return "number"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// dateLayout is the only accepted calendar-date format. time.Parse with
// this layout rejects unpadded components, wrong separators, and
// out-of-range dates like 2025-13-40.
const dateLayout = "2006-01-02"

// Field describes one schema entry. Object fields carry a nested schema
// and are validated recursively with the same rules.
type Field struct {
	Name     string
	Kind     Kind
	Optional bool
	Rule     string // validator tag evaluated against the parsed value
	Fields   []Field
}

// Violation is the field-level diagnostic produced by the walker.
type Violation = model.Violation

// rules evaluates the per-field rule tags. The instance is stateless after
// construction and safe for concurrent use.
var rules = validator.New()

// Validate checks doc against fields and returns every violation found.
// An empty slice means the document is clean.
func Validate(doc map[string]any, fields []Field) []Violation {
	return validateObject("", fields, doc)
}

func validateObject(prefix string, fields []Field, obj map[string]any) []Violation {
	var out []Violation
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		raw, ok := obj[f.Name]
		if !ok || raw == nil {
			if !f.Optional {
				out = append(out, Violation{Field: path, Rule: "required", Message: "field is missing"})
			}
			continue
		}
		out = append(out, checkValue(path, f, raw)...)
	}
	return out
}

func checkValue(path string, f Field, raw any) []Violation {
	switch f.Kind {
	case KindObject:
		obj, ok := raw.(map[string]any)
		if !ok {
			return typeViolation(path, f, raw)
		}
		return validateObject(path, f.Fields, obj)

	case KindString:
		s, ok := raw.(string)
		if !ok {
			return typeViolation(path, f, raw)
		}
		return checkRule(path, f, s)

	case KindDate:
		s, ok := raw.(string)
		if !ok {
			return typeViolation(path, f, raw)
		}
		if _, err := time.Parse(dateLayout, s); err != nil {
			return []Violation{{Field: path, Rule: "date", Message: "invalid date format, use YYYY-MM-DD"}}
		}
		return nil

	case KindInt:
		n, ok := raw.(json.Number)
		if !ok {
			return typeViolation(path, f, raw)
		}
		v, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return []Violation{{Field: path, Rule: "integer", Message: "must be an integer"}}
		}
		return checkRule(path, f, v)

	case KindDecimal:
		n, ok := raw.(json.Number)
		if !ok {
			return typeViolation(path, f, raw)
		}
		// Rule tags are range checks only; the float conversion here never
		// feeds arithmetic or display, which parse the exact JSON text.
		v, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return []Violation{{Field: path, Rule: "number", Message: "must be a number"}}
		}
		return checkRule(path, f, v)

	case KindBool:
		if _, ok := raw.(bool); !ok {
			return typeViolation(path, f, raw)
		}
		return nil
	}
	return nil
}

func checkRule(path string, f Field, v any) []Violation {
	if f.Rule == "" {
		return nil
	}
	if err := rules.Var(v, f.Rule); err != nil {
		return []Violation{{Field: path, Rule: f.Rule, Message: ruleMessage(f.Rule)}}
	}
	return nil
}

func typeViolation(path string, f Field, raw any) []Violation {
	return []Violation{{
		Field:   path,
		Rule:    "type",
		Message: fmt.Sprintf("expected %s, got %s", f.Kind, jsonTypeName(raw)),
	}}
}

func ruleMessage(rule string) string {
	switch rule {
	case "required":
		return "must not be empty"
	case "gte=0":
		return "must not be negative"
	case "gt=0":
		return "must be greater than zero"
	}
	return "must satisfy " + rule
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	return "null"
}
