package codec

import "errors"

var (
	ErrSerialize   = errors.New("serialization failed")
	ErrDeserialize = errors.New("deserialization failed")
)
