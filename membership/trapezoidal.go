package membership

import "github.com/JoshuaKento/lvlath-fuzzy/fzerr"

// Trapezoidal is a membership shape that ramps up from 0 at LeftLeg to 1 at
// LeftBase, stays at 1 through RightBase, then ramps down to 0 at RightLeg.
type Trapezoidal struct {
	leftLeg, leftBase, rightBase, rightLeg float64
}

// NewTrapezoidal constructs a Trapezoidal shape, validating the strictly
// increasing 4-tuple leftLeg < leftBase < rightBase < rightLeg. Violations
// return fzerr.ErrInvalidShape.
func NewTrapezoidal(leftLeg, leftBase, rightBase, rightLeg float64) (*Trapezoidal, error) {
	if !(leftLeg < leftBase && leftBase < rightBase && rightBase < rightLeg) {
		return nil, fzerr.Wrap(fzerr.ErrInvalidShape, "NewTrapezoidal",
			"require leftLeg < leftBase < rightBase < rightLeg, got (%v, %v, %v, %v)",
			leftLeg, leftBase, rightBase, rightLeg)
	}
	return &Trapezoidal{
		leftLeg:   leftLeg,
		leftBase:  leftBase,
		rightBase: rightBase,
		rightLeg:  rightLeg,
	}, nil
}

// Eval returns μ(x): 0 outside (leftLeg, rightLeg), 1 on [leftBase,
// rightBase], linear ramps on the legs.
func (t *Trapezoidal) Eval(x float64) float64 {
	if x <= t.leftLeg || x >= t.rightLeg {
		return 0
	}
	if x >= t.leftBase && x <= t.rightBase {
		return 1
	}
	if x < t.leftBase {
		return slope(x, t.leftLeg, t.leftBase, 1)
	}
	return slope(x, t.rightBase, t.rightLeg, -1)
}
