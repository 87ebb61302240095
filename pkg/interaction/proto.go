package interaction

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Protobuf field numbers used by AppendProto and UnmarshalProto. Every field
// is encoded as fixed32.
const (
	FieldMemberships         protowire.Number = 1
	FieldFilter              protowire.Number = 2
	FieldGroupingMemberships protowire.Number = 3
	FieldGroupingFilter      protowire.Number = 4
	FieldGroupingID          protowire.Number = 5
)

// AppendProto appends g to b as a protobuf message body. Zero fields are
// omitted.
func (g Groups) AppendProto(b []byte) []byte {
	b = appendFixed32Field(b, FieldMemberships, g.Memberships)
	b = appendFixed32Field(b, FieldFilter, g.Filter)
	b = appendFixed32Field(b, FieldGroupingMemberships, g.GroupingMemberships)
	b = appendFixed32Field(b, FieldGroupingFilter, g.GroupingFilter)
	return appendFixed32Field(b, FieldGroupingID, g.GroupingID)
}

// UnmarshalProto decodes a protobuf message body produced by AppendProto or
// any compatible encoder. Missing fields decode as zero and unknown fields
// are skipped. On error g is left unchanged.
func (g *Groups) UnmarshalProto(b []byte) error {
	var out Groups
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("interaction: decode tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		field := out.protoField(num)
		if field == nil {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("interaction: skip field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}

		if typ != protowire.Fixed32Type {
			return fmt.Errorf("%w: field %d has type %d", ErrInvalidWireType, num, typ)
		}
		v, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return fmt.Errorf("interaction: decode field %d: %w", num, protowire.ParseError(n))
		}
		*field = v
		b = b[n:]
	}
	*g = out
	return nil
}

func (g *Groups) protoField(num protowire.Number) *uint32 {
	switch num {
	case FieldMemberships:
		return &g.Memberships
	case FieldFilter:
		return &g.Filter
	case FieldGroupingMemberships:
		return &g.GroupingMemberships
	case FieldGroupingFilter:
		return &g.GroupingFilter
	case FieldGroupingID:
		return &g.GroupingID
	default:
		return nil
	}
}

func appendFixed32Field(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, v)
}
