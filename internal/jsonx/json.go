// Package jsonx is the JSON codec used for every wire payload of the client
// (backend REST calls and geocoding responses).
package jsonx

import jsoniter "github.com/json-iterator/go"

var (
	// JSON is configured to behave like encoding/json.
	JSON = jsoniter.ConfigCompatibleWithStandardLibrary

	Marshal    = JSON.Marshal
	Unmarshal  = JSON.Unmarshal
	NewDecoder = JSON.NewDecoder
	NewEncoder = JSON.NewEncoder
)
