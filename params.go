/*
Copyright © 2026 the OceanMix authors.
This file is part of OceanMix.

OceanMix is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

OceanMix is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with OceanMix.  If not, see <http://www.gnu.org/licenses/>.
*/

package oceanmix

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// DiffusivityScaling holds the coefficients of the Richardson-number
// dependent diffusivity scaling. Each of the momentum, tracer, and TKE
// diffusivities has its own weakly and strongly stratified limit; the
// critical Richardson number and the transition width are shared.
// The values are empirical calibration results.
type DiffusivityScaling struct {
	KuLow  float64 `toml:"ku_low"`  // momentum scaling limit for Ri ≪ RiCrit
	KuHigh float64 `toml:"ku_high"` // momentum scaling limit for Ri ≫ RiCrit
	KcLow  float64 `toml:"kc_low"`  // tracer scaling limits
	KcHigh float64 `toml:"kc_high"`
	KeLow  float64 `toml:"ke_low"` // TKE scaling limits
	KeHigh float64 `toml:"ke_high"`

	RiCrit  float64 `toml:"ri_crit"`  // critical Richardson number
	RiWidth float64 `toml:"ri_width"` // width of the transition between limits
}

// DefaultDiffusivityScaling returns the default calibration of the
// stability scaling.
func DefaultDiffusivityScaling() DiffusivityScaling {
	return DiffusivityScaling{
		KuLow:  0.15,
		KuHigh: 0.73,
		KcLow:  0.40,
		KcHigh: 1.77,
		KeLow:  0.13,
		KeHigh: 1.22,

		RiCrit:  0.76,
		RiWidth: 0.72,
	}
}

// SurfaceTKEFluxParameters weights the wind-driven and convective
// contributions to the surface TKE flux.
type SurfaceTKEFluxParameters struct {
	Wind       float64 `toml:"wind"`       // weight of the friction-velocity term
	Convective float64 `toml:"convective"` // weight of the convective-velocity term
}

// DefaultSurfaceTKEFluxParameters returns the default calibration of the
// surface TKE flux.
func DefaultSurfaceTKEFluxParameters() SurfaceTKEFluxParameters {
	return SurfaceTKEFluxParameters{
		Wind:       3.62,
		Convective: 1.31,
	}
}

// ConvectiveAdjustmentParameters holds the fixed mixing coefficients used
// in place of the Richardson-number scaling wherever a column point is
// statically unstable.
type ConvectiveAdjustmentParameters struct {
	Ku float64 `toml:"ku"` // momentum
	Kc float64 `toml:"kc"` // tracers
	Ke float64 `toml:"ke"` // TKE
}

// DefaultConvectiveAdjustmentParameters returns the default calibration
// of the convective-adjustment coefficients.
func DefaultConvectiveAdjustmentParameters() ConvectiveAdjustmentParameters {
	return ConvectiveAdjustmentParameters{
		Ku: 0.0057,
		Kc: 0.6706,
		Ke: 0.2717,
	}
}

// closureFile is the TOML representation of a closure configuration.
type closureFile struct {
	// Dissipation and mixing-length coefficients Cᴰ and Cᵇ.
	DissipationCoefficient  *float64 `toml:"dissipation_coefficient"`
	MixingLengthCoefficient *float64 `toml:"mixing_length_coefficient"`

	// Discretization is either "explicit" or "vertically_implicit".
	Discretization string `toml:"discretization"`

	// Precision is either "float64" (the default) or "float32".
	Precision string `toml:"precision"`

	Scaling              *DiffusivityScaling             `toml:"scaling"`
	SurfaceFlux          *SurfaceTKEFluxParameters       `toml:"surface_flux"`
	ConvectiveAdjustment *ConvectiveAdjustmentParameters `toml:"convective_adjustment"`
}

// LoadClosure reads a closure configuration in TOML format from r.
// Omitted values take their defaults; convective adjustment is enabled
// only if a [convective_adjustment] table is present.
func LoadClosure(r io.Reader) (*Closure, error) {
	var f closureFile
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return nil, fmt.Errorf("oceanmix: reading closure configuration: %v", err)
	}
	var opts []ClosureOption
	if f.DissipationCoefficient != nil {
		opts = append(opts, WithDissipationCoefficient(*f.DissipationCoefficient))
	}
	if f.MixingLengthCoefficient != nil {
		opts = append(opts, WithMixingLengthCoefficient(*f.MixingLengthCoefficient))
	}
	if f.Scaling != nil {
		opts = append(opts, WithScaling(*f.Scaling))
	}
	if f.SurfaceFlux != nil {
		opts = append(opts, WithSurfaceFluxParameters(*f.SurfaceFlux))
	}
	if f.ConvectiveAdjustment != nil {
		opts = append(opts, WithConvectiveAdjustment(*f.ConvectiveAdjustment))
	}
	switch f.Discretization {
	case "", "explicit":
	case "vertically_implicit":
		opts = append(opts, WithDiscretization(VerticallyImplicit))
	default:
		return nil, fmt.Errorf("oceanmix: unknown discretization %q", f.Discretization)
	}
	switch f.Precision {
	case "", "float64":
	case "float32":
		opts = append(opts, WithPrecision(Float32))
	default:
		return nil, fmt.Errorf("oceanmix: unknown precision %q", f.Precision)
	}
	return NewClosure(opts...), nil
}
