package dungeon

import "fmt"

// Family is the coarse tile category a Label belongs to: void, ground, or wall.
// The wall orientation filter matches 3x3 neighbourhoods against Family alone,
// never against the finer-grained Label subId.
type Family int

const (
	FamilyVoid Family = iota
	FamilyGround
	FamilyWall
)

// familyAny is a wildcard Family value for neighbourhood patterns, never stored
// on a grid cell. ClassifyWall's rules are written out without it.
const familyAny Family = -1

func (f Family) String() string {
	switch f {
	case FamilyVoid:
		return "void"
	case FamilyGround:
		return "ground"
	case FamilyWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Label is a tagged tile value. Every Label carries a stable (id, subId) pair
// (ID/SubID below) used as the texture catalog's lookup key; ID is the Family,
// SubID distinguishes the specific variant within that family.
type Label int

const (
	VOID Label = iota
	GROUND
	GROUND_HALL
	GROUND_DOOR
	RAW_WALL
	WALL_BASE
	WALL_N
	WALL_S
	WALL_E
	WALL_W
	WALL_NE
	WALL_NW
	WALL_SE
	WALL_SW
	WALL_NE_INT
	WALL_NW_INT
	WALL_SE_INT
	WALL_SW_INT
)

// Family returns the coarse category this label belongs to.
func (l Label) Family() Family {
	switch l {
	case VOID:
		return FamilyVoid
	case GROUND, GROUND_HALL, GROUND_DOOR:
		return FamilyGround
	default:
		return FamilyWall
	}
}

// ID is the texture catalog's family key.
func (l Label) ID() int { return int(l.Family()) }

// SubID is the texture catalog's variant key within the family.
func (l Label) SubID() int {
	switch l {
	case VOID:
		return 0
	case GROUND:
		return 0
	case GROUND_HALL:
		return 1
	case GROUND_DOOR:
		return 2
	case RAW_WALL:
		return 0
	case WALL_BASE:
		return 1
	case WALL_N:
		return 2
	case WALL_S:
		return 3
	case WALL_E:
		return 4
	case WALL_W:
		return 5
	case WALL_NE:
		return 6
	case WALL_NW:
		return 7
	case WALL_SE:
		return 8
	case WALL_SW:
		return 9
	case WALL_NE_INT:
		return 10
	case WALL_NW_INT:
		return 11
	case WALL_SE_INT:
		return 12
	case WALL_SW_INT:
		return 13
	default:
		return -1
	}
}

func (l Label) String() string {
	switch l {
	case VOID:
		return "void"
	case GROUND:
		return "ground"
	case GROUND_HALL:
		return "ground_hall"
	case GROUND_DOOR:
		return "ground_door"
	case RAW_WALL:
		return "raw_wall"
	case WALL_BASE:
		return "wall_base"
	case WALL_N:
		return "wall_n"
	case WALL_S:
		return "wall_s"
	case WALL_E:
		return "wall_e"
	case WALL_W:
		return "wall_w"
	case WALL_NE:
		return "wall_ne"
	case WALL_NW:
		return "wall_nw"
	case WALL_SE:
		return "wall_se"
	case WALL_SW:
		return "wall_sw"
	case WALL_NE_INT:
		return "wall_ne_int"
	case WALL_NW_INT:
		return "wall_nw_int"
	case WALL_SE_INT:
		return "wall_se_int"
	case WALL_SW_INT:
		return "wall_sw_int"
	default:
		return fmt.Sprintf("label(%d)", int(l))
	}
}

// AllLabels lists every tile label the rasteriser and orientation filter can
// produce. The texture catalog must resolve every one of them (invariant: texture
// coverage).
func AllLabels() []Label {
	return []Label{
		VOID, GROUND, GROUND_HALL, GROUND_DOOR, RAW_WALL, WALL_BASE,
		WALL_N, WALL_S, WALL_E, WALL_W,
		WALL_NE, WALL_NW, WALL_SE, WALL_SW,
		WALL_NE_INT, WALL_NW_INT, WALL_SE_INT, WALL_SW_INT,
	}
}
