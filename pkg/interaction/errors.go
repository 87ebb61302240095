package interaction

import "errors"

var (
	// ErrInvalidLength is returned when a fixed-layout buffer is not Size bytes.
	ErrInvalidLength = errors.New("interaction: invalid encoded length")
	// ErrInvalidWireType is returned when a known protobuf field is not fixed32.
	ErrInvalidWireType = errors.New("interaction: invalid protobuf wire type")
)
