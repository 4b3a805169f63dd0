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

// Viscous and diffusive face fluxes, −K·∂z(q), with the diffusivity
// interpolated from cell centers to the face where each flux lives.
// z-face indices run from 0 (bottom boundary) to Nz (surface).

// useExplicitFlux reports whether the vertical flux through z-face k is
// computed explicitly. Under vertically-implicit discretization the
// interior fluxes are assembled into an external tridiagonal solve and
// return exactly zero here; fluxes through the top and bottom boundary
// faces never enter the implicit solve and are always explicit.
func (c *Closure) useExplicitFlux(g *Grid, k int) bool {
	if c.Discretization == Explicit {
		return true
	}
	return k == 0 || k == g.Nz
}

// interpFaceX interpolates a cell-centered diffusivity to the point
// shared by x-face i and z-face k.
func interpFaceX(K *Field, k, j, i int) float64 {
	return (K.Get(k-1, j, i-1) + K.Get(k-1, j, i) +
		K.Get(k, j, i-1) + K.Get(k, j, i)) / 4.
}

// interpFaceY interpolates a cell-centered diffusivity to the point
// shared by y-face j and z-face k.
func interpFaceY(K *Field, k, j, i int) float64 {
	return (K.Get(k-1, j-1, i) + K.Get(k-1, j, i) +
		K.Get(k, j-1, i) + K.Get(k, j, i)) / 4.
}

// interpFaceZ interpolates a cell-centered diffusivity to z-face k.
func interpFaceZ(K *Field, k, j, i int) float64 {
	return (K.Get(k-1, j, i) + K.Get(k, j, i)) / 2.
}

// ViscousFluxUz returns the vertical viscous flux of u through z-face k
// at x-face i of column j.
func (c *Closure) ViscousFluxUz(m *Model, d *DiffusivityFields, k, j, i int) float64 {
	if !c.useExplicitFlux(m.Grid, k) {
		return 0
	}
	ν := interpFaceX(d.Ku, k, j, i)
	return -ν * m.dUdz(k, j, i)
}

// ViscousFluxVz returns the vertical viscous flux of v through z-face k
// at y-face j of column i.
func (c *Closure) ViscousFluxVz(m *Model, d *DiffusivityFields, k, j, i int) float64 {
	if !c.useExplicitFlux(m.Grid, k) {
		return 0
	}
	ν := interpFaceY(d.Ku, k, j, i)
	return -ν * m.dVdz(k, j, i)
}

// ViscousFluxWz returns the vertical viscous flux of w, which lives at
// cell centers; k here is a cell index. The cells adjacent to the top
// and bottom boundaries take the explicit branch under the
// vertically-implicit discretization.
func (c *Closure) ViscousFluxWz(m *Model, d *DiffusivityFields, k, j, i int) float64 {
	if c.Discretization == VerticallyImplicit && k != 0 && k != m.Grid.Nz-1 {
		return 0
	}
	ν := d.Ku.Get(k, j, i)
	dwdz := (m.W.Get(k+1, j, i) - m.W.Get(k, j, i)) / m.Grid.Dz(k)
	return -ν * dwdz
}

// DiffusiveFluxCz returns the vertical diffusive flux of tracer tr
// through z-face k of column (j, i). The TKE tracer diffuses with Kᵉ,
// all other tracers with Kᶜ.
func (c *Closure) DiffusiveFluxCz(m *Model, d *DiffusivityFields, tr *Tracer, k, j, i int) float64 {
	if !c.useExplicitFlux(m.Grid, k) {
		return 0
	}
	κ := interpFaceZ(c.VerticalDiffusivity(d, tr), k, j, i)
	dcdz := (tr.Data.Get(k, j, i) - tr.Data.Get(k-1, j, i)) / m.Grid.DzCenters(k)
	return -κ * dcdz
}

// The closure transports only vertically: every horizontal viscous and
// diffusive flux is identically zero.

// DiffusiveFluxCx returns the horizontal (x) diffusive flux of any
// tracer, which is zero under this closure.
func (c *Closure) DiffusiveFluxCx(m *Model, d *DiffusivityFields, tr *Tracer, k, j, i int) float64 {
	return 0
}

// DiffusiveFluxCy returns the horizontal (y) diffusive flux of any
// tracer, which is zero under this closure.
func (c *Closure) DiffusiveFluxCy(m *Model, d *DiffusivityFields, tr *Tracer, k, j, i int) float64 {
	return 0
}

// ViscousFluxUx returns the horizontal viscous flux of u, which is zero
// under this closure.
func (c *Closure) ViscousFluxUx(m *Model, d *DiffusivityFields, k, j, i int) float64 { return 0 }

// ViscousFluxVy returns the horizontal viscous flux of v, which is zero
// under this closure.
func (c *Closure) ViscousFluxVy(m *Model, d *DiffusivityFields, k, j, i int) float64 { return 0 }
