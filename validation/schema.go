// Package validation holds the request schemas for jobs. Each schema decodes a
// raw request body and checks it as a whole, producing either the decoded payload
// or the first reason it was rejected.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"jobservice/api/models"
)

// MalformedJSONMessage is the reason reported when the body is not JSON at all.
const MalformedJSONMessage = "Invalid request payload JSON format"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so messages match what the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Result is the outcome of validating a payload against a Schema.
type Result[T any] struct {
	Value  T
	Reason string
	valid  bool
}

// Valid reports whether the payload passed the schema.
func (r Result[T]) Valid() bool {
	return r.valid
}

func valid[T any](v T) Result[T] {
	return Result[T]{Value: v, valid: true}
}

func invalid[T any](reason string) Result[T] {
	return Result[T]{Reason: reason}
}

// Schema describes how one operation's request body is decoded and checked.
type Schema[T any] struct {
	// Name identifies the schema in logs and metrics.
	Name string
	// AllowUnknown ignores fields outside T instead of rejecting them.
	AllowUnknown bool
}

// CreateSchema validates bodies for creating a job. Unknown fields, a
// client-supplied id included, are rejected.
var CreateSchema = Schema[models.CreateJobRequest]{Name: "create"}

// UpdateSchema validates bodies for patching a job. Fields other than
// contactEmail and status are ignored.
var UpdateSchema = Schema[models.UpdateJobRequest]{Name: "update", AllowUnknown: true}

// Validate decodes body into T and checks it. An empty body is treated as {}.
// Keys must match field names exactly; any other key is rejected unless the
// schema allows unknown fields, in which case it is dropped.
func (s Schema[T]) Validate(body []byte) Result[T] {
	var payload T

	var unknown []string
	if len(bytes.TrimSpace(body)) > 0 {
		object, reason := decodeObject(body)
		if reason != "" {
			return invalid[T](reason)
		}
		if reason := decodeFields(object, &payload); reason != "" {
			return invalid[T](reason)
		}
		unknown = unknownKeys[T](object)
	}

	if err := validate.Struct(&payload); err != nil {
		return invalid[T](Describe(err))
	}
	if len(unknown) > 0 && !s.AllowUnknown {
		return invalid[T](fmt.Sprintf("%q is not allowed", unknown[0]))
	}
	return valid(payload)
}

func decodeObject(body []byte) (map[string]json.RawMessage, string) {
	var object map[string]json.RawMessage

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&object); err != nil {
		return nil, describeDecodeError(err)
	}
	// Anything after the first JSON value makes the body malformed.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, MalformedJSONMessage
	}
	return object, ""
}

// decodeFields sets each field of payload from the key with exactly its JSON
// name, in field order. An explicit null is not accepted for any field.
func decodeFields[T any](object map[string]json.RawMessage, payload *T) string {
	for _, name := range fieldNames[T]() {
		raw, ok := object[name]
		if !ok {
			continue
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return typeReason(name)
		}
		single, err := json.Marshal(map[string]json.RawMessage{name: raw})
		if err != nil {
			return MalformedJSONMessage
		}
		if err := json.Unmarshal(single, payload); err != nil {
			return describeDecodeError(err)
		}
	}
	return ""
}

// unknownKeys returns the keys of object that name no field of T, sorted.
func unknownKeys[T any](object map[string]json.RawMessage) []string {
	known := fieldNames[T]()
	var unknown []string
	for key := range object {
		if !slices.Contains(known, key) {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	return unknown
}

func fieldNames[T any]() []string {
	typ := reflect.TypeFor[T]()
	names := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		name := strings.SplitN(typ.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			names = append(names, name)
		}
	}
	return names
}

func typeReason(field string) string {
	if field == "priceInPence" {
		return `"priceInPence" must be an integer`
	}
	return fmt.Sprintf("%q must be a string", field)
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return `"value" must be of type object`
		}
		return typeReason(typeErr.Field)
	}
	return MalformedJSONMessage
}
