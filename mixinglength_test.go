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

func TestWallDistance(t *testing.T) {
	g := UniformGrid(1, 1, 8, 16.) // Δz = 2
	if d := wallDistance(g, 0); different(d, 1., testTolerance) {
		t.Errorf("wall distance at the bottom cell is %g; want 1", d)
	}
	if d := wallDistance(g, g.Nz-1); different(d, 1., testTolerance) {
		t.Errorf("wall distance at the top cell is %g; want 1", d)
	}
	if d := wallDistance(g, 3); different(d, 7., testTolerance) {
		t.Errorf("wall distance at k=3 is %g; want 7", d)
	}
}

func TestBuoyancyLength(t *testing.T) {
	const cb = 1.16
	// Unstratified water puts no buoyancy limit on the mixing length.
	if l := buoyancyLength(cb, 1.e-4, 0); !math.IsInf(l, 1) {
		t.Errorf("buoyancy length at N=0 is %g; want +Inf", l)
	}
	// max(0,N²) also covers unstable stratification.
	if l := buoyancyLength(cb, 1.e-4, -1.e-5); !math.IsInf(l, 1) {
		t.Errorf("buoyancy length at N²<0 is %g; want +Inf", l)
	}
	want := cb * math.Sqrt(1.e-4) / math.Sqrt(1.e-6)
	if l := buoyancyLength(cb, 1.e-4, 1.e-6); different(l, want, testTolerance) {
		t.Errorf("buoyancy length is %g; want %g", l, want)
	}
	// Negative TKE is clamped to zero.
	if l := buoyancyLength(cb, -1.e-4, 1.e-6); l != 0 {
		t.Errorf("buoyancy length for negative TKE is %g; want 0", l)
	}
}

// The dissipation length never drops below half the local vertical
// spacing, whatever the wall and buoyancy limits do.
func TestDissipationLengthFloor(t *testing.T) {
	c := NewClosure()
	g := UniformGrid(1, 1, 16, 32.)
	for k := 0; k < g.Nz; k++ {
		for _, e := range []float64{-1.e-3, 0, 1.e-6, 1.e-2} {
			for _, N2 := range []float64{-1.e-4, 0, 1.e-8, 1.e-2} {
				l := c.dissipationLength(g, k, e, N2)
				if l < g.Dz(k)/2. {
					t.Fatalf("k=%d, e=%g, N²=%g: dissipation length %g below the floor %g",
						k, e, N2, l, g.Dz(k)/2.)
				}
			}
		}
	}
}
