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

import "math"

// The three TKE source terms are queryable independently for diagnostics
// and are summed externally into the TKE tendency.

// ShearProduction returns the TKE production by vertical shear at cell
// (k, j, i), Kᵘ·((∂u/∂z)²+(∂v/∂z)²). It is never negative.
func (c *Closure) ShearProduction(m *Model, d *DiffusivityFields, k, j, i int) float64 {
	return d.Ku.Get(k, j, i) * m.shearSquared(k, j, i)
}

// BuoyancyFlux returns the TKE buoyancy flux term −Kᶜ·N² at cell
// (k, j, i). Destabilizing buoyancy gradients make it a source.
func (c *Closure) BuoyancyFlux(m *Model, d *DiffusivityFields, k, j, i int) float64 {
	return -d.Kc.Get(k, j, i) * m.centerBuoyancyGradient(k, j, i)
}

// Dissipation returns the TKE dissipation rate Cᴰ·|e|^(3/2)/ℓ at cell
// (k, j, i). The magnitude of TKE enters both the rate and the mixing
// length, so spuriously negative TKE is damped back toward zero at the
// same rate as positive TKE of the same size.
func (c *Closure) Dissipation(m *Model, k, j, i int) float64 {
	e := math.Abs(m.tke.Data.Get(k, j, i))
	N2 := m.centerBuoyancyGradient(k, j, i)
	l := c.dissipationLength(m.Grid, k, e, N2)
	return c.CD * math.Pow(e, 1.5) / l
}
