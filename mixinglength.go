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

// wallDistance returns the distance from the center of cell k to the
// nearer of the top and bottom boundaries.
func wallDistance(g *Grid, k int) float64 {
	z := g.ZC[k]
	return min(g.Top()-z, z-g.Bottom())
}

// buoyancyLength returns the stratification-limited length scale
// Cᵇ·√max(0,e)/N with N = √max(0,N²). It is +Inf when N is zero, leaving
// the mixing length to the wall limit.
func buoyancyLength(cb, e, N2 float64) float64 {
	N := math.Sqrt(math.Max(0, N2))
	if N == 0 {
		return math.Inf(1)
	}
	return cb * math.Sqrt(math.Max(0, e)) / N
}

// dissipationLength returns the mixing length at cell k: the smaller of
// the wall distance and the buoyancy length, floored at half the local
// vertical spacing so that dissipation stays finite.
func (c *Closure) dissipationLength(g *Grid, k int, e, N2 float64) float64 {
	lMin := g.Dz(k) / 2.
	l := min(wallDistance(g, k), buoyancyLength(c.Cb, e, N2))
	return math.Max(lMin, l)
}
