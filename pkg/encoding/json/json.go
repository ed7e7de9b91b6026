package json

import "encoding/json"

func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func Valid(data []byte) bool {
	return json.Valid(data)
}

type Marshaler interface {
	json.Marshaler
}

type Unmarshaler interface {
	json.Unmarshaler
}

type RawMessage = json.RawMessage
