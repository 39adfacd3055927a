package polar

// KinematicViscosityAir is nu for air at standard conditions, in m^2/s.
const KinematicViscosityAir = 1.4607e-5

// ReynoldsNumber returns V*c/nu. A non-positive nu falls back to air.
func ReynoldsNumber(velocity, chord, nu float64) float64 {
	if nu <= 0 {
		nu = KinematicViscosityAir
	}
	return velocity * chord / nu
}
