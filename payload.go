package intake

import (
	"encoding/json"
	"fmt"
)

// Result is the outcome of one validation call. It has exactly two
// variants, set only by the Success and Failure constructors, so the
// mutual exclusivity of record and field errors is structural.
type Result struct {
	record *Record
	errs   FieldErrors
}

// Success wraps a validated record.
func Success(rec *Record) Result {
	if rec == nil {
		panic("intake: Success called with a nil record")
	}
	return Result{record: rec}
}

// Failure wraps a non-empty field error map.
func Failure(errs FieldErrors) Result {
	if len(errs) == 0 {
		panic("intake: Failure called with no field errors")
	}
	return Result{errs: errs}
}

// ValidateAll runs the whole pipeline on the eight raw fields and wraps
// the outcome. This is the entrypoint tools and commands use.
func ValidateAll(raw RawFieldSet) Result {
	rec, errs := Validate(raw)
	if errs != nil {
		return Failure(errs)
	}
	return Success(rec)
}

// OK reports whether the result carries a record.
func (r Result) OK() bool { return r.record != nil }

// Record returns the validated record, or nil for a failure.
func (r Result) Record() *Record { return r.record }

// FieldErrors returns the field error map, or nil for a success.
func (r Result) FieldErrors() FieldErrors { return r.errs }

// MarshalJSON writes one of the two payload envelopes:
//
//	{"status":"success","data":"<compact record JSON>"}
//	{"status":"error","error_message":"<compact field-error JSON>"}
//
// data and error_message carry compact JSON as a string, the shape
// function-calling agents exchange. Field errors serialize with sorted
// keys, so identical inputs give byte-identical payloads.
func (r Result) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	if r.record != nil {
		data, err := json.Marshal(r.record)
		if err != nil {
			return nil, fmt.Errorf("could not marshal record: %w", err)
		}
		w.Append("status", "success")
		w.Append("data", string(data))
	} else {
		msg, err := json.Marshal(r.errs)
		if err != nil {
			return nil, fmt.Errorf("could not marshal field errors: %w", err)
		}
		w.Append("status", "error")
		w.Append("error_message", string(msg))
	}
	return w.MarshalJSON()
}

// Payload returns the envelope as a generic map, the shape expected by a
// genai function response.
func (r Result) Payload() map[string]any {
	b, err := r.MarshalJSON()
	if err != nil {
		return map[string]any{"status": "error", "error_message": err.Error()}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{"status": "error", "error_message": err.Error()}
	}
	return m
}
