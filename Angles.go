package go_pointmass

import (
	"fmt"

	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
)

//Angles keeps the launch angles of the bore relative to the line of sight
type Angles struct {
	pitch unit.Angular
	yaw   unit.Angular
}

//CreateAngles creates the launch angles
//
//pitch is positive up, yaw is positive to the right.
func CreateAngles(pitch, yaw unit.Angular) Angles {
	return Angles{pitch: pitch, yaw: yaw}
}

//CreateZeroAngles creates the angles with the bore parallel to the line of sight
func CreateZeroAngles() Angles {
	zero := unit.MustCreateAngular(0, unit.AngularMOA)
	return Angles{pitch: zero, yaw: zero}
}

//Pitch returns the vertical angle
func (v Angles) Pitch() unit.Angular {
	return v.pitch
}

//Yaw returns the horizontal angle
func (v Angles) Yaw() unit.Angular {
	return v.yaw
}

//Add returns the sum of the angles
func (v Angles) Add(b Angles) Angles {
	return Angles{pitch: v.pitch.Add(b.pitch), yaw: v.yaw.Add(b.yaw)}
}

func (v Angles) String() string {
	return fmt.Sprintf("Pitch:%s,Yaw:%s", v.pitch, v.yaw)
}
