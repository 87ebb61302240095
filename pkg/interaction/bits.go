package interaction

// Group bits. They carry no meaning of their own; callers decide what each
// bit stands for.
const (
	Group1 uint32 = 1 << iota
	Group2
	Group3
	Group4
	Group5
	Group6
	Group7
	Group8
	Group9
	Group10
	Group11
	Group12
	Group13
	Group14
	Group15
	Group16
	Group17
	Group18
	Group19
	Group20
	Group21
	Group22
	Group23
	Group24
	Group25
	Group26
	Group27
	Group28
	Group29
	Group30
	Group31
	Group32
)

const (
	// GroupAll has every group bit set.
	GroupAll uint32 = ^uint32(0)
	// GroupNone has no group bit set.
	GroupNone uint32 = 0
)

// GroupBit returns the mask with only bit i set (0-based). Positions past 31
// return GroupNone.
func GroupBit(i uint) uint32 {
	if i >= 32 {
		return GroupNone
	}
	return 1 << i
}
