package geometry

import "fmt"

// Gravity names the reference corner or edge against which a rectangle's
// position is interpreted.
type Gravity int

const (
	GravityTopLeft Gravity = iota
	GravityTop
	GravityTopRight
	GravityLeft
	GravityCenter
	GravityRight
	GravityBottomLeft
	GravityBottom
	GravityBottomRight
)

var gravityAnchors = [...][2]float64{
	GravityTopLeft:     {0.0, 0.0},
	GravityTop:         {0.5, 0.0},
	GravityTopRight:    {1.0, 0.0},
	GravityLeft:        {0.0, 0.5},
	GravityCenter:      {0.5, 0.5},
	GravityRight:       {1.0, 0.5},
	GravityBottomLeft:  {0.0, 1.0},
	GravityBottom:      {0.5, 1.0},
	GravityBottomRight: {1.0, 1.0},
}

var gravityNames = [...]string{
	GravityTopLeft:     "top-left",
	GravityTop:         "top",
	GravityTopRight:    "top-right",
	GravityLeft:        "left",
	GravityCenter:      "center",
	GravityRight:       "right",
	GravityBottomLeft:  "bottom-left",
	GravityBottom:      "bottom",
	GravityBottomRight: "bottom-right",
}

// Anchor returns the gravity's reference point as fractions of width and
// height. (0, 0) is top-left, (1, 1) is bottom-right.
func (g Gravity) Anchor() (float64, float64) {
	if g < 0 || int(g) >= len(gravityAnchors) {
		return 0, 0
	}
	return gravityAnchors[g][0], gravityAnchors[g][1]
}

func (g Gravity) String() string {
	if g < 0 || int(g) >= len(gravityNames) {
		return fmt.Sprintf("Gravity(%d)", int(g))
	}
	return gravityNames[g]
}

// ParseGravity resolves a gravity name like "top-left" or "center".
func ParseGravity(name string) (Gravity, error) {
	for g, n := range gravityNames {
		if n == name {
			return Gravity(g), nil
		}
	}
	return GravityTopLeft, fmt.Errorf("unknown gravity: %q", name)
}
