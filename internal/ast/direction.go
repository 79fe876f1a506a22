package ast

// Direction is the diagram layout direction. The zero value means the
// diagram carries no direction statement.
type Direction uint8

const (
	DirUnset Direction = iota
	DirTopBottom
	DirBottomTop
	DirLeftRight
	DirRightLeft
)

// ParseDirection maps a direction value token to its Direction.
// 'TD' is an alias of 'TB'.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "TB", "TD":
		return DirTopBottom, true
	case "BT":
		return DirBottomTop, true
	case "LR":
		return DirLeftRight, true
	case "RL":
		return DirRightLeft, true
	default:
		return DirUnset, false
	}
}

// String returns the canonical surface form ('TD' canonicalizes to 'TB').
func (d Direction) String() string {
	switch d {
	case DirTopBottom:
		return "TB"
	case DirBottomTop:
		return "BT"
	case DirLeftRight:
		return "LR"
	case DirRightLeft:
		return "RL"
	default:
		return ""
	}
}
