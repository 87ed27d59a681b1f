package json

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/qjpcpu/qjson"
)

var jiter = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyMarshal colorful json
func PrettyMarshal(v interface{}) []byte {
	return qjson.PrettyMarshal(v)
}

// Marshal same as sys marshal
func Marshal(v interface{}) ([]byte, error) {
	return jiter.Marshal(v)
}

// Unmarshal same as sys unmarshal
func Unmarshal(data []byte, v interface{}) error {
	return jiter.Unmarshal(data, v)
}
