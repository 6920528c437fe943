package go_pointmass

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/gehtsoft-usa/go_pointmass/bmath/vector"
)

//cEarthAngularVelocity is the angular velocity of the Earth rotation, rad/s
const cEarthAngularVelocity float64 = 7.292115e-05

//cStandardGravity is the standard gravitational acceleration, m/s²
const cStandardGravity float64 = 9.80665

//ShooterGeometry keeps the position and the orientation of the shooter
type ShooterGeometry struct {
	latitude unit.Angular
	bearing  unit.Angular
	incline  unit.Angular
	gravity  unit.Acceleration
}

//CreateShooterGeometry creates the shooter geometry with the standard gravity.
//
//bearing is the azimuth of the line of sight, clockwise from the north.
//incline is the angle of the line of sight above the horizon.
func CreateShooterGeometry(latitude, bearing, incline unit.Angular) (ShooterGeometry, error) {
	return CreateShooterGeometryWithGravity(latitude, bearing, incline,
		unit.MustCreateAcceleration(cStandardGravity, unit.AccelerationMPS2))
}

//CreateShooterGeometryWithGravity creates the shooter geometry with the local gravity magnitude
func CreateShooterGeometryWithGravity(latitude, bearing, incline unit.Angular, gravity unit.Acceleration) (ShooterGeometry, error) {
	v := ShooterGeometry{latitude: latitude, bearing: bearing, incline: incline, gravity: gravity}
	if err := v.validate(); err != nil {
		return ShooterGeometry{}, err
	}
	return v, nil
}

func (v ShooterGeometry) validate() error {
	if math.Abs(v.latitude.In(unit.AngularDegree)) > 90 {
		return configError("latitude", "must be in -90..90°, got %s", v.latitude)
	}
	if math.Abs(v.incline.In(unit.AngularDegree)) >= 90 {
		return configError("incline", "must be in (-90..90)°, got %s", v.incline)
	}
	if v.gravity.In(unit.AccelerationMPS2) <= 0 {
		return configError("gravity", "must be greater than zero, got %s", v.gravity)
	}
	return nil
}

//CreateLevelShooterGeometry creates the shooter at the equator facing north with the level line of sight
func CreateLevelShooterGeometry() ShooterGeometry {
	zero := unit.MustCreateAngular(0, unit.AngularDegree)
	return ShooterGeometry{
		latitude: zero,
		bearing:  zero,
		incline:  zero,
		gravity:  unit.MustCreateAcceleration(cStandardGravity, unit.AccelerationMPS2),
	}
}

//Latitude returns the latitude of the shooter
func (v ShooterGeometry) Latitude() unit.Angular {
	return v.latitude
}

//Bearing returns the azimuth of the line of sight
func (v ShooterGeometry) Bearing() unit.Angular {
	return v.bearing
}

//Incline returns the angle of the line of sight above the horizon
func (v ShooterGeometry) Incline() unit.Angular {
	return v.incline
}

//Gravity returns the magnitude of the gravitational acceleration
func (v ShooterGeometry) Gravity() unit.Acceleration {
	return v.gravity
}

func (v ShooterGeometry) String() string {
	return fmt.Sprintf("Latitude:%s,Bearing:%s,Incline:%s,Gravity:%s", v.latitude, v.bearing, v.incline, v.gravity)
}

//gravityVector returns the gravity in the line-of-sight frame
func (v ShooterGeometry) gravityVector() vector.Vector {
	g := vector.Create(0, -v.gravity.In(unit.AccelerationMPS2), 0)
	return vector.PivotZ(g, -v.incline.In(unit.AngularRadian))
}

//earthRotation returns the angular velocity of the Earth in the line-of-sight frame
func (v ShooterGeometry) earthRotation() vector.Vector {
	sinLat, cosLat := math.Sincos(v.latitude.In(unit.AngularRadian))
	sinBrg, cosBrg := math.Sincos(v.bearing.In(unit.AngularRadian))
	level := vector.Create(
		cEarthAngularVelocity*cosLat*cosBrg,
		cEarthAngularVelocity*sinLat,
		-cEarthAngularVelocity*cosLat*sinBrg)
	return vector.PivotZ(level, -v.incline.In(unit.AngularRadian))
}
