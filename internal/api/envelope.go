package api

import (
	"bytes"
	"encoding/json"
)

// unwrapped is the result of envelope sniffing: the payload bytes and the
// pagination metadata, if the envelope carried any.
type unwrapped struct {
	payload json.RawMessage
	meta    json.RawMessage
	hasMeta bool
}

// unwrapBody recognizes the closed set of envelope shapes the backend emits
// and extracts payload and metadata. The probes run in strict precedence
// order; the first match wins. plural is the resource's list key for the
// resource-named envelope (e.g. "licenses").
//
//  1. bare array
//  2. {data, meta}
//  3. {data, pagination}
//  4. {<plural>: [...], pagination}
//  5. {data} only
//  6. passthrough
func unwrapBody(body []byte, plural string) unwrapped {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return unwrapped{payload: json.RawMessage("null")}
	}
	if trimmed[0] == '[' {
		return unwrapped{payload: trimmed}
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return unwrapped{payload: trimmed}
	}

	data, hasData := env["data"]
	if hasData {
		if meta, ok := env["meta"]; ok {
			return unwrapped{payload: data, meta: meta, hasMeta: true}
		}
		if pg, ok := env["pagination"]; ok {
			return unwrapped{payload: data, meta: pg, hasMeta: true}
		}
	}
	if plural != "" {
		if named, ok := env[plural]; ok {
			if pg, ok := env["pagination"]; ok {
				return unwrapped{payload: named, meta: pg, hasMeta: true}
			}
		}
	}
	if hasData {
		return unwrapped{payload: data}
	}
	return unwrapped{payload: trimmed}
}

func isJSONNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// decodeList decodes the payload with list intent: a null or absent payload
// becomes an empty slice, never nil, so rendering stays branch-free.
func decodeList[T any](u unwrapped) ([]T, error) {
	if isJSONNull(u.payload) {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(u.payload, &items); err != nil {
		return nil, &APIError{
			Kind:    KindUnknown,
			Code:    CodeUnknownError,
			Message: "unexpected list payload: " + err.Error(),
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// decodeEntity decodes the payload with single-entity intent: a null payload
// is a not-found condition even when the envelope reported success.
func decodeEntity[T any](u unwrapped) (T, error) {
	var v T
	if isJSONNull(u.payload) {
		return v, notFoundError("entity not found")
	}
	if err := json.Unmarshal(u.payload, &v); err != nil {
		return v, &APIError{
			Kind:    KindUnknown,
			Code:    CodeUnknownError,
			Message: "unexpected entity payload: " + err.Error(),
		}
	}
	return v, nil
}
