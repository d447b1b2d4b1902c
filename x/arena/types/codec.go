package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// JSONValue stores T as its JSON encoding.
func JSONValue[T any]() collcodec.ValueCodec[T] {
	return jsonValueCodec[T]{}
}

type jsonValueCodec[T any] struct{}

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var v T
	err := json.Unmarshal(b, &v)
	return v, err
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	bz, err := c.Encode(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (jsonValueCodec[T]) ValueType() string {
	var v T
	return fmt.Sprintf("json/%T", v)
}
