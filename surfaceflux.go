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

// SurfaceTKEFlux is the generated top boundary condition for the TKE
// tracer. It converts the surface momentum and buoyancy fluxes into a
// TKE influx
//
//	Qᵉ = −Cᴰ·(Cᵂu★·u★³ + CᵂwΔ·wΔ³)
//
// with friction velocity u★ = (Qᵘ²+Qᵛ²)^¼ and convective velocity cubed
// wΔ³ = max(0,Qᵇ)·Δz, where Δz is the top cell spacing. The weight Cᴰ is
// the closure's dissipation coefficient; the calibration ties the two
// together, so the coupling is kept.
type SurfaceTKEFlux struct {
	closure  *Closure
	buoyancy BuoyancyModel
}

// Flux implements FluxBC. It is a pure function of the current field
// state.
func (s *SurfaceTKEFlux) Flux(m *Model, j, i int, t float64) float64 {
	qu := m.BCs.topFlux("u", m, j, i, t)
	qv := m.BCs.topFlux("v", m, j, i, t)
	uStar := math.Pow(qu*qu+qv*qv, 0.25)

	qb := s.buoyancy.SurfaceBuoyancyFlux(m, j, i, t)
	wDelta3 := math.Max(0, qb) * m.Grid.Dz(m.Grid.Nz-1)

	p := s.closure.SurfaceFlux
	return -s.closure.CD * (p.Wind*uStar*uStar*uStar + p.Convective*wDelta3)
}
