package lro

import (
	"net/url"

	"github.com/tidwall/gjson"
)

// GetProvisioningState extracts "properties.provisioningState" from body.
// It returns (StatusUnknown, false) when body is empty, not a JSON object,
// "properties" is missing or not an object, or "provisioningState" is
// missing or not a string, matching spec.md §4.2 exactly. Each level is
// checked for existence and JSON type, since gjson reports a present value
// of the wrong type (e.g. a numeric provisioningState) as existing.
func GetProvisioningState(body []byte) (Status, bool) {
	if len(body) == 0 {
		return StatusUnknown, false
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return StatusUnknown, false
	}
	props := root.Get("properties")
	if !props.Exists() || !props.IsObject() {
		return StatusUnknown, false
	}
	state := props.Get("provisioningState")
	if !state.Exists() || state.Type != gjson.String {
		return StatusUnknown, false
	}
	return ParseStatus(state.String()), true
}

// GetLROStatus extracts the top-level "status" string.
func GetLROStatus(body []byte) (Status, bool) {
	if len(body) == 0 {
		return StatusUnknown, false
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return StatusUnknown, false
	}
	status := root.Get("status")
	if !status.Exists() || status.Type != gjson.String {
		return StatusUnknown, false
	}
	return ParseStatus(status.String()), true
}

// GetResourceLocation parses the top-level "resourceLocation" string as an
// absolute URL. It returns (nil, nil) when the field is absent, and a
// non-nil error only when the field is present but fails to parse.
func GetResourceLocation(body []byte) (*url.URL, error) {
	if len(body) == 0 {
		return nil, nil
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, nil
	}
	loc := root.Get("resourceLocation")
	if !loc.Exists() || loc.Type != gjson.String {
		return nil, nil
	}
	return url.Parse(loc.String())
}

// GetResultPath extracts the JSON value at a top-level key, used by the
// OperationLoc handler's configured result-path (spec.md §4.6.2). Failure
// if the key is absent or body is not a JSON object.
func GetResultPath(body []byte, key string) ([]byte, error) {
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, &ProtocolError{Msg: "result-path: body is not a JSON object"}
	}
	v := root.Get(key)
	if !v.Exists() {
		return nil, &ProtocolError{Msg: "result-path: key " + key + " not present in final response body"}
	}
	return []byte(v.Raw), nil
}
