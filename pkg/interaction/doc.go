// Package interaction provides pairwise interaction filtering with bit masks.
//
// A Groups value describes which groups an entity belongs to and which groups
// it is willing to interact with. Two entities may interact when each one's
// memberships intersect the other's filter. Entities sharing a grouping ID
// must additionally pass the same mutual test on their grouping fields.
//
// Main Types:
//   - Groups: the filter value, comparable, hashable and safe to copy
//
// Usage:
//
//	player := interaction.All().WithMemberships(interaction.Group1)
//	ghost := interaction.All().
//	    WithMemberships(interaction.Group2).
//	    WithFilter(interaction.GroupAll &^ interaction.Group1)
//
//	if interaction.Test(player, ghost) {
//	    // run the narrow phase
//	}
//
// Values can be persisted with MarshalBinary (a fixed 20 byte layout),
// AppendProto (protobuf fixed32 fields 1..5) or through their yaml tags.
package interaction
