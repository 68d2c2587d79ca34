package petro

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPhysicalState reports pressure or temperature outside the physical
// range of a fluid model.
var ErrNonPhysicalState = errors.New("petro: non-physical pressure or temperature")

// AtmosphericPressureBar is standard atmospheric pressure in bar, the
// conventional reference for the fluid property correlations.
const AtmosphericPressureBar = 1.01325

// WaterDensity approximates brine density in kg/m3 from temperature in
// degrees Celsius and salinity in parts per thousand, using a truncated
// form of the UNESCO EOS-80 seawater equation of state.
func WaterDensity(temperature, salinity float64) float64 {
	t := temperature
	s := salinity
	s32 := s * math.Sqrt(s)

	return 999.842594 +
		6.793952e-2*t -
		9.095290e-3*t*t +
		1.001685e-4*t*t*t -
		1.120083e-6*t*t*t*t +
		6.536332e-9*t*t*t*t*t +
		8.24493e-1*s -
		4.0899e-3*t*s +
		7.6438e-5*t*t*s -
		8.2467e-7*t*t*t*s +
		5.3875e-9*t*t*t*t*s -
		5.72466e-3*s32 +
		1.0227e-4*t*s32 -
		1.6546e-6*t*t*s32 +
		4.8314e-4*s*s
}

// WaterBulkModulus approximates the bulk modulus of brine in GPa from
// temperature in degrees Celsius, salinity in parts per thousand, and
// pressure in bar.
func WaterBulkModulus(temperature, salinity, pressure float64) float64 {
	return 2.2 + 0.1*temperature - 0.001*salinity + 0.00004*pressure
}

// OilDensity approximates dead-oil density in g/cm3 from API gravity and
// temperature in degrees Celsius.
func OilDensity(apiGravity, temperature float64) float64 {
	return 141.5/(apiGravity+131.5) - 0.0006*temperature
}

// OilBulkModulus approximates the bulk modulus of oil in GPa from API
// gravity, temperature in degrees Celsius, and pressure in bar.
func OilBulkModulus(apiGravity, temperature, pressure float64) float64 {
	return 1.2 + 0.005*apiGravity - 0.0001*temperature + 0.00001*pressure
}

// GasDensity computes ideal-gas density in kg/m3 from gas gravity relative
// to air, pressure in bar, and temperature in degrees Celsius.
func GasDensity(gasGravity, pressure, temperature float64) (float64, error) {
	kelvin := temperature + 273.15
	if pressure <= 0 || kelvin <= 0 {
		return 0, fmt.Errorf("%w: %g bar at %g degC", ErrNonPhysicalState, pressure, temperature)
	}

	const gasConstant = 8.3145
	molarMass := gasGravity * 0.02897 // air is 28.97 g/mol
	return (pressure * 1e5 * molarMass) / (gasConstant * kelvin), nil
}

// GasBulkModulus approximates the bulk modulus of gas in GPa from pressure
// in bar and temperature in degrees Celsius.
func GasBulkModulus(pressure, temperature float64) float64 {
	return 0.8 + 0.001*pressure - 0.0001*temperature
}
