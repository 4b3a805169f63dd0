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
	"log"
	"sync"
)

// Discretization selects how the tendencies arising from this closure
// are to be stepped in time.
type Discretization int

const (
	// Explicit computes all vertical fluxes explicitly.
	Explicit Discretization = iota

	// VerticallyImplicit leaves interior vertical fluxes to an external
	// implicit tridiagonal solve; only fluxes through the top and bottom
	// boundary faces are computed explicitly.
	VerticallyImplicit
)

// Precision is the floating-point precision that closure coefficients
// are converted to at construction.
type Precision int

const (
	Float64 Precision = iota
	Float32
)

// Closure is the configuration of the TKE-based vertical turbulence
// closure. It is immutable after construction; build it with NewClosure
// or LoadClosure.
type Closure struct {
	// Scaling is the Richardson-number dependent diffusivity scaling.
	Scaling DiffusivityScaling

	// CD is the dissipation coefficient Cᴰ. It also weights the surface
	// TKE flux; see SurfaceTKEFlux.
	CD float64

	// Cb is the mixing-length coefficient Cᵇ of the buoyancy length
	// scale.
	Cb float64

	// ConvectiveAdjustment, if non-nil, enables enhanced mixing at
	// statically unstable points.
	ConvectiveAdjustment *ConvectiveAdjustmentParameters

	// SurfaceFlux weights the wind and convective contributions to the
	// surface TKE flux.
	SurfaceFlux SurfaceTKEFluxParameters

	Discretization Discretization

	precision Precision
}

// ClosureOption configures a Closure under construction.
type ClosureOption func(*Closure)

// WithScaling sets the diffusivity-scaling coefficients.
func WithScaling(s DiffusivityScaling) ClosureOption {
	return func(c *Closure) { c.Scaling = s }
}

// WithDissipationCoefficient sets the dissipation coefficient Cᴰ.
func WithDissipationCoefficient(cd float64) ClosureOption {
	return func(c *Closure) { c.CD = cd }
}

// WithMixingLengthCoefficient sets the mixing-length coefficient Cᵇ.
func WithMixingLengthCoefficient(cb float64) ClosureOption {
	return func(c *Closure) { c.Cb = cb }
}

// WithConvectiveAdjustment enables convective adjustment with the given
// coefficients.
func WithConvectiveAdjustment(p ConvectiveAdjustmentParameters) ClosureOption {
	return func(c *Closure) { c.ConvectiveAdjustment = &p }
}

// WithSurfaceFluxParameters sets the surface TKE flux coefficients.
func WithSurfaceFluxParameters(p SurfaceTKEFluxParameters) ClosureOption {
	return func(c *Closure) { c.SurfaceFlux = p }
}

// WithDiscretization sets the time discretization of the closure fluxes.
func WithDiscretization(d Discretization) ClosureOption {
	return func(c *Closure) { c.Discretization = d }
}

// WithPrecision sets the floating-point precision that all coefficients
// are converted to when the closure is built.
func WithPrecision(p Precision) ClosureOption {
	return func(c *Closure) { c.precision = p }
}

var experimentalNotice sync.Once

// NewClosure builds a closure configuration. Unset coefficients take
// their default calibration values; all coefficients are converted to
// the configured precision once, at build time.
func NewClosure(opts ...ClosureOption) *Closure {
	c := &Closure{
		Scaling:     DefaultDiffusivityScaling(),
		CD:          2.91,
		Cb:          1.16,
		SurfaceFlux: DefaultSurfaceTKEFluxParameters(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.precision == Float32 {
		c.roundCoefficients()
	}
	experimentalNotice.Do(func() {
		log.Printf("oceanmix: the TKE-based closure is experimental and its calibration may change")
	})
	return c
}

// roundCoefficients converts every coefficient to float32 and back,
// so that all arithmetic sees float32-representable parameter values.
func (c *Closure) roundCoefficients() {
	r := func(x float64) float64 { return float64(float32(x)) }
	s := &c.Scaling
	s.KuLow, s.KuHigh = r(s.KuLow), r(s.KuHigh)
	s.KcLow, s.KcHigh = r(s.KcLow), r(s.KcHigh)
	s.KeLow, s.KeHigh = r(s.KeLow), r(s.KeHigh)
	s.RiCrit, s.RiWidth = r(s.RiCrit), r(s.RiWidth)
	c.CD, c.Cb = r(c.CD), r(c.Cb)
	c.SurfaceFlux.Wind = r(c.SurfaceFlux.Wind)
	c.SurfaceFlux.Convective = r(c.SurfaceFlux.Convective)
	if c.ConvectiveAdjustment != nil {
		ca := *c.ConvectiveAdjustment
		ca.Ku, ca.Kc, ca.Ke = r(ca.Ku), r(ca.Kc), r(ca.Ke)
		c.ConvectiveAdjustment = &ca
	}
}

// VerticalViscosity returns the diffusivity field that acts as the
// vertical viscosity in an external implicit vertical solve.
func (c *Closure) VerticalViscosity(d *DiffusivityFields) *Field { return d.Ku }

// VerticalDiffusivity returns the vertical diffusivity field for tracer
// tr: the TKE diffusivity for the TKE tracer, the ordinary tracer
// diffusivity otherwise.
func (c *Closure) VerticalDiffusivity(d *DiffusivityFields, tr *Tracer) *Field {
	if tr.Kind == TurbulentKineticEnergy {
		return d.Ke
	}
	return d.Kc
}

// AddSurfaceTKEFlux returns a copy of bcs with a generated surface TKE
// flux condition installed at the top of the TKE tracer. Any
// user-supplied top condition for TKE is replaced (with a logged notice);
// bottom and lateral conditions are preserved. It is called once, at
// model construction.
func (c *Closure) AddSurfaceTKEFlux(bcs BoundaryConditionSet, g *Grid,
	tracers []*Tracer, buoyancy BuoyancyModel) (BoundaryConditionSet, error) {

	var tke *Tracer
	for _, tr := range tracers {
		if tr.Kind == TurbulentKineticEnergy {
			tke = tr
			break
		}
	}
	if tke == nil {
		return nil, fmt.Errorf("oceanmix: tracer set does not contain a turbulent kinetic energy tracer")
	}

	out := make(BoundaryConditionSet, len(bcs)+1)
	for name, fbc := range bcs {
		out[name] = fbc
	}
	fbc := &FieldBoundaryConditions{}
	if user, ok := bcs[tke.Name]; ok {
		*fbc = *user
		if user.Top != nil {
			log.Printf("oceanmix: replacing user-supplied top boundary condition for tracer %q "+
				"with the closure surface TKE flux", tke.Name)
		}
	}
	fbc.Top = &SurfaceTKEFlux{closure: c, buoyancy: buoyancy}
	out[tke.Name] = fbc
	return out, nil
}

// ClosureSequence combines a series of closures. Only the first closure
// owns the TKE-specific terms (surface flux, shear production, buoyancy
// flux, dissipation); the rest contribute diffusivities only, and callers
// must preserve this ordering.
type ClosureSequence struct {
	First *Closure
	Rest  []*Closure
}

// NewClosureSequence builds a closure sequence from first and any number
// of additional closures.
func NewClosureSequence(first *Closure, rest ...*Closure) *ClosureSequence {
	return &ClosureSequence{First: first, Rest: rest}
}

// All returns the closures in order.
func (s *ClosureSequence) All() []*Closure {
	return append([]*Closure{s.First}, s.Rest...)
}

// Len returns the number of closures in the sequence.
func (s *ClosureSequence) Len() int { return 1 + len(s.Rest) }
