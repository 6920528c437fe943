package go_pointmass

import (
	"fmt"

	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
)

//ScopeGeometry keeps the position and the orientation of the sight relative to the bore
type ScopeGeometry struct {
	height unit.Distance
	offset unit.Distance
	pitch  unit.Angular
	yaw    unit.Angular
	cant   unit.Angular
}

//CreateScopeGeometry creates the sight mounted the height above the bore axis
func CreateScopeGeometry(height unit.Distance) ScopeGeometry {
	zero := unit.MustCreateAngular(0, unit.AngularMOA)
	return ScopeGeometry{
		height: height,
		offset: unit.MustCreateDistance(0, unit.DistanceInch),
		pitch:  zero,
		yaw:    zero,
		cant:   zero,
	}
}

//CreateScopeGeometryWithAngles creates the sight with all parameters set.
//
//offset is the horizontal offset of the sight, positive to the right of the bore.
//pitch and yaw are dialled on the sight and added to the launch angles.
//cant is the roll of the sight about the line of sight.
func CreateScopeGeometryWithAngles(height, offset unit.Distance, pitch, yaw, cant unit.Angular) ScopeGeometry {
	return ScopeGeometry{
		height: height,
		offset: offset,
		pitch:  pitch,
		yaw:    yaw,
		cant:   cant,
	}
}

//Height returns the height of the sight above the bore axis
func (v ScopeGeometry) Height() unit.Distance {
	return v.height
}

//Offset returns the horizontal offset of the sight
func (v ScopeGeometry) Offset() unit.Distance {
	return v.offset
}

//Pitch returns the vertical angle dialled on the sight
func (v ScopeGeometry) Pitch() unit.Angular {
	return v.pitch
}

//Yaw returns the horizontal angle dialled on the sight
func (v ScopeGeometry) Yaw() unit.Angular {
	return v.yaw
}

//Cant returns the roll of the sight
func (v ScopeGeometry) Cant() unit.Angular {
	return v.cant
}

//Angles returns the dialled pitch and yaw
func (v ScopeGeometry) Angles() Angles {
	return CreateAngles(v.pitch, v.yaw)
}

//WithoutDial returns the copy of the sight with pitch and yaw reset to zero
func (v ScopeGeometry) WithoutDial() ScopeGeometry {
	zero := unit.MustCreateAngular(0, unit.AngularMOA)
	v.pitch = zero
	v.yaw = zero
	return v
}

func (v ScopeGeometry) String() string {
	return fmt.Sprintf("Height:%s,Offset:%s,Pitch:%s,Yaw:%s,Cant:%s", v.height, v.offset, v.pitch, v.yaw, v.cant)
}
