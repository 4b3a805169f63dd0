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
	"math"
	"testing"
)

// With no wind stress, the surface TKE flux reduces to the convective
// term −Cᴰ·CᵂwΔ·Qᵇ·Δz; with a stabilizing buoyancy flux only the wind
// term remains.
func TestSurfaceTKEFluxFormula(t *testing.T) {
	const (
		qb = 3.e-8 // surface buoyancy flux [m²/s³]
		qu = -2.e-4
		qv = 1.5e-4
	)
	c := NewClosure()

	// Convective contribution only.
	m := testColumn(t, 8, 16., c, BoundaryConditionSet{
		"b": {Top: ConstantFlux(qb)},
	})
	dz := m.Grid.Dz(m.Grid.Nz - 1)
	want := -c.CD * c.SurfaceFlux.Convective * qb * dz
	if got := m.SurfaceTKEFlux(0, 0); different(got, want, testTolerance) {
		t.Errorf("convective-only surface TKE flux %g; want %g", got, want)
	}

	// Wind contribution only: a stabilizing (negative) buoyancy flux is
	// clamped out of the convective velocity.
	m = testColumn(t, 8, 16., c, BoundaryConditionSet{
		"b": {Top: ConstantFlux(-qb)},
		"u": {Top: ConstantFlux(qu)},
		"v": {Top: ConstantFlux(qv)},
	})
	uStar := math.Pow(qu*qu+qv*qv, 0.25)
	want = -c.CD * c.SurfaceFlux.Wind * uStar * uStar * uStar
	if got := m.SurfaceTKEFlux(0, 0); different(got, want, testTolerance) {
		t.Errorf("wind-only surface TKE flux %g; want %g", got, want)
	}

	// Quiescent surface: no TKE influx at all.
	m = testColumn(t, 8, 16., c, nil)
	if got := m.SurfaceTKEFlux(0, 0); got != 0 {
		t.Errorf("surface TKE flux with no forcing is %g; want 0", got)
	}
}

// Boundary-condition augmentation replaces a user-supplied top TKE
// condition with the generated surface flux but preserves the bottom
// condition.
func TestBoundaryConditionAugmentation(t *testing.T) {
	bottom := ConstantFlux(2.e-9)
	m := testColumn(t, 8, 16., NewClosure(), BoundaryConditionSet{
		"e": {Top: ConstantFlux(5.), Bottom: bottom},
	})

	fbc := m.BCs["e"]
	if fbc == nil {
		t.Fatal("no boundary conditions installed for the TKE tracer")
	}
	if _, ok := fbc.Top.(*SurfaceTKEFlux); !ok {
		t.Errorf("top TKE condition is %T; want the generated surface flux", fbc.Top)
	}
	if fbc.Bottom != bottom {
		t.Error("bottom TKE condition was not preserved")
	}
}

// Augmentation installs a top condition even when the user supplied no
// TKE conditions at all.
func TestBoundaryConditionAugmentationFromEmpty(t *testing.T) {
	m := testColumn(t, 8, 16., NewClosure(), nil)
	fbc := m.BCs["e"]
	if fbc == nil {
		t.Fatal("no boundary conditions installed for the TKE tracer")
	}
	if _, ok := fbc.Top.(*SurfaceTKEFlux); !ok {
		t.Errorf("top TKE condition is %T; want the generated surface flux", fbc.Top)
	}
	if fbc.Bottom != nil {
		t.Error("augmentation invented a bottom TKE condition")
	}
}

// The surface flux borrows the dissipation coefficient from its closure.
func TestSurfaceFluxUsesClosureDissipationCoefficient(t *testing.T) {
	const qb = 3.e-8
	c1 := NewClosure(WithDissipationCoefficient(1.))
	c2 := NewClosure(WithDissipationCoefficient(2.))
	bcs := func() BoundaryConditionSet {
		return BoundaryConditionSet{"b": {Top: ConstantFlux(qb)}}
	}
	m1 := testColumn(t, 8, 16., c1, bcs())
	m2 := testColumn(t, 8, 16., c2, bcs())
	f1, f2 := m1.SurfaceTKEFlux(0, 0), m2.SurfaceTKEFlux(0, 0)
	if different(2.*f1, f2, testTolerance) {
		t.Errorf("surface flux does not scale with Cᴰ: %g vs %g", f1, f2)
	}
}
