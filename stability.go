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

// richardsonNumber returns the gradient Richardson number N²/(∂zu²+∂zv²).
// It is exactly zero whenever N² is zero, for any shear, so unstratified
// water never produces NaN. With stratification and no shear it is ±Inf,
// which the tanh scaling maps onto the appropriate stability limit.
func richardsonNumber(N2, shear2 float64) float64 {
	if N2 == 0 {
		return 0
	}
	return N2 / shear2
}

// step is a smooth approximation of a unit step centered at c with
// transition width w.
func step(x, c, w float64) float64 {
	return (1. + math.Tanh((x-c)/w)) / 2.
}

func (s DiffusivityScaling) scale(ri, lo, hi float64) float64 {
	return lo + (hi-lo)*step(ri, s.RiCrit, s.RiWidth)
}

// Momentum returns the momentum diffusivity scaling at Richardson
// number ri.
func (s DiffusivityScaling) Momentum(ri float64) float64 {
	return s.scale(ri, s.KuLow, s.KuHigh)
}

// Tracer returns the tracer diffusivity scaling at Richardson number ri.
func (s DiffusivityScaling) Tracer(ri float64) float64 {
	return s.scale(ri, s.KcLow, s.KcHigh)
}

// TKE returns the TKE diffusivity scaling at Richardson number ri.
func (s DiffusivityScaling) TKE(ri float64) float64 {
	return s.scale(ri, s.KeLow, s.KeHigh)
}

// dUdz returns ∂u/∂z at x-face i, z-face k of column j.
func (m *Model) dUdz(k, j, i int) float64 {
	return (m.U.Get(k, j, i) - m.U.Get(k-1, j, i)) / m.Grid.DzCenters(k)
}

// dVdz returns ∂v/∂z at y-face j, z-face k of column i.
func (m *Model) dVdz(k, j, i int) float64 {
	return (m.V.Get(k, j, i) - m.V.Get(k-1, j, i)) / m.Grid.DzCenters(k)
}

// shearSquared returns (∂u/∂z)² + (∂v/∂z)² interpolated to the center of
// cell (k, j, i). The gradients are squared on their native faces before
// interpolation, which keeps the result nonnegative.
func (m *Model) shearSquared(k, j, i int) float64 {
	sq := func(x float64) float64 { return x * x }
	uu := (sq(m.dUdz(k, j, i)) + sq(m.dUdz(k+1, j, i)) +
		sq(m.dUdz(k, j, i+1)) + sq(m.dUdz(k+1, j, i+1))) / 4.
	vv := (sq(m.dVdz(k, j, i)) + sq(m.dVdz(k+1, j, i)) +
		sq(m.dVdz(k, j+1, i)) + sq(m.dVdz(k+1, j+1, i))) / 4.
	return uu + vv
}

// centerBuoyancyGradient returns ∂b/∂z interpolated to the center of
// cell (k, j, i).
func (m *Model) centerBuoyancyGradient(k, j, i int) float64 {
	return (m.Buoyancy.BuoyancyGradient(m, k, j, i) +
		m.Buoyancy.BuoyancyGradient(m, k+1, j, i)) / 2.
}
