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

import "testing"

// seedFluxState gives the column stratification, shear, a sheared tracer
// profile, and uniform TKE so that every vertical flux is nonzero under
// the explicit discretization.
func seedFluxState(m *Model) {
	setStratification(m, 1.e-6)
	setTKE(m, 1.e-4)
	for k := 0; k < m.Grid.Nz; k++ {
		m.U.Set(0.02*m.Grid.ZC[k], k, 0, 0)
		m.V.Set(-0.01*m.Grid.ZC[k], k, 0, 0)
	}
	m.UpdateTurbulence()
}

// Under the vertically-implicit discretization, interior vertical fluxes
// are exactly zero (the implicit solve owns them) and the boundary-face
// fluxes equal the explicit values.
func TestVerticallyImplicitDispatch(t *testing.T) {
	explicit := testColumn(t, 8, 16., NewClosure(), nil)
	implicit := testColumn(t, 8, 16., NewClosure(WithDiscretization(VerticallyImplicit)), nil)
	seedFluxState(explicit)
	seedFluxState(implicit)

	ce, de := explicit.Closures.First, explicit.Diffusivities[0]
	ci, di := implicit.Closures.First, implicit.Diffusivities[0]
	tre, tri := explicit.Tracer("b"), implicit.Tracer("b")

	nz := explicit.Grid.Nz
	for k := 1; k < nz; k++ { // interior z-faces
		if f := ci.ViscousFluxUz(implicit, di, k, 0, 0); f != 0 {
			t.Errorf("interior face k=%d: implicit viscous u-flux %g; want exactly 0", k, f)
		}
		if f := ci.DiffusiveFluxCz(implicit, di, tri, k, 0, 0); f != 0 {
			t.Errorf("interior face k=%d: implicit diffusive flux %g; want exactly 0", k, f)
		}
	}
	for _, k := range []int{0, nz} { // boundary faces
		want := ce.ViscousFluxUz(explicit, de, k, 0, 0)
		if got := ci.ViscousFluxUz(implicit, di, k, 0, 0); got != want {
			t.Errorf("boundary face k=%d: implicit viscous u-flux %g; want explicit value %g", k, got, want)
		}
		want = ce.DiffusiveFluxCz(explicit, de, tre, k, 0, 0)
		if got := ci.DiffusiveFluxCz(implicit, di, tri, k, 0, 0); got != want {
			t.Errorf("boundary face k=%d: implicit diffusive flux %g; want explicit value %g", k, got, want)
		}
	}

	// The seeded state must actually exercise the boundary faces.
	if f := ce.ViscousFluxUz(explicit, de, 0, 0, 0); f == 0 {
		t.Error("boundary viscous flux is zero; the test state exercises nothing")
	}
}

func TestExplicitFluxFormula(t *testing.T) {
	c := NewClosure()
	m := testColumn(t, 8, 16., c, nil)
	seedFluxState(m)
	d := m.Diffusivities[0]
	tr := m.Tracer("b")

	k := 4
	ν := interpFaceX(d.Ku, k, 0, 0)
	want := -ν * m.dUdz(k, 0, 0)
	if got := c.ViscousFluxUz(m, d, k, 0, 0); different(got, want, testTolerance) {
		t.Errorf("viscous u-flux %g; want %g", got, want)
	}
	κ := interpFaceZ(d.Kc, k, 0, 0)
	wantc := -κ * (tr.Data.Get(k, 0, 0) - tr.Data.Get(k-1, 0, 0)) / m.Grid.DzCenters(k)
	if got := c.DiffusiveFluxCz(m, d, tr, k, 0, 0); different(got, wantc, testTolerance) {
		t.Errorf("diffusive flux %g; want %g", got, wantc)
	}
}

// This closure transports nothing horizontally.
func TestHorizontalFluxesVanish(t *testing.T) {
	c := NewClosure()
	m := testColumn(t, 8, 16., c, nil)
	seedFluxState(m)
	d := m.Diffusivities[0]
	for _, tr := range m.Tracers {
		for k := 0; k < m.Grid.Nz; k++ {
			if f := c.DiffusiveFluxCx(m, d, tr, k, 0, 0); f != 0 {
				t.Fatalf("tracer %q: horizontal x-flux %g at k=%d; want 0", tr.Name, f, k)
			}
			if f := c.DiffusiveFluxCy(m, d, tr, k, 0, 0); f != 0 {
				t.Fatalf("tracer %q: horizontal y-flux %g at k=%d; want 0", tr.Name, f, k)
			}
		}
	}
	if f := c.ViscousFluxUx(m, d, 3, 0, 0); f != 0 {
		t.Errorf("horizontal viscous u-flux %g; want 0", f)
	}
	if f := c.ViscousFluxVy(m, d, 3, 0, 0); f != 0 {
		t.Errorf("horizontal viscous v-flux %g; want 0", f)
	}
}

// The implicit solver is handed the momentum diffusivity as vertical
// viscosity, the TKE diffusivity for the TKE tracer, and the ordinary
// tracer diffusivity for everything else.
func TestImplicitFieldSelection(t *testing.T) {
	c := NewClosure(WithDiscretization(VerticallyImplicit))
	m := testColumn(t, 8, 16., c, nil)
	d := m.Diffusivities[0]

	if c.VerticalViscosity(d) != d.Ku {
		t.Error("vertical viscosity is not the momentum diffusivity field")
	}
	if c.VerticalDiffusivity(d, m.TKE()) != d.Ke {
		t.Error("the TKE tracer does not diffuse with the TKE diffusivity field")
	}
	if c.VerticalDiffusivity(d, m.Tracer("b")) != d.Kc {
		t.Error("an ordinary tracer does not diffuse with the tracer diffusivity field")
	}
}
