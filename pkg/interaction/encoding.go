package interaction

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Size is the length in bytes of the fixed binary layout: five little-endian
// uint32 values in field declaration order.
const Size = 20

// AppendBinary appends the fixed binary layout of g to b.
func (g Groups) AppendBinary(b []byte) ([]byte, error) {
	return g.appendFixed(b), nil
}

// MarshalBinary returns the fixed binary layout of g.
func (g Groups) MarshalBinary() ([]byte, error) {
	return g.appendFixed(make([]byte, 0, Size)), nil
}

// UnmarshalBinary decodes the fixed binary layout. data must be exactly Size
// bytes long.
func (g *Groups) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(data), Size)
	}
	g.Memberships = binary.LittleEndian.Uint32(data[0:4])
	g.Filter = binary.LittleEndian.Uint32(data[4:8])
	g.GroupingMemberships = binary.LittleEndian.Uint32(data[8:12])
	g.GroupingFilter = binary.LittleEndian.Uint32(data[12:16])
	g.GroupingID = binary.LittleEndian.Uint32(data[16:20])
	return nil
}

// Hash returns the xxhash64 digest of the fixed binary layout.
func (g Groups) Hash() uint64 {
	var buf [Size]byte
	g.putFixed(buf[:])
	return xxhash.Sum64(buf[:])
}

func (g Groups) appendFixed(b []byte) []byte {
	b = binary.LittleEndian.AppendUint32(b, g.Memberships)
	b = binary.LittleEndian.AppendUint32(b, g.Filter)
	b = binary.LittleEndian.AppendUint32(b, g.GroupingMemberships)
	b = binary.LittleEndian.AppendUint32(b, g.GroupingFilter)
	return binary.LittleEndian.AppendUint32(b, g.GroupingID)
}

func (g Groups) putFixed(b []byte) {
	_ = b[Size-1]
	binary.LittleEndian.PutUint32(b[0:4], g.Memberships)
	binary.LittleEndian.PutUint32(b[4:8], g.Filter)
	binary.LittleEndian.PutUint32(b[8:12], g.GroupingMemberships)
	binary.LittleEndian.PutUint32(b[12:16], g.GroupingFilter)
	binary.LittleEndian.PutUint32(b[16:20], g.GroupingID)
}
