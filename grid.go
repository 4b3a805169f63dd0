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

import "fmt"

// Grid is a structured, vertically bounded staggered mesh. Horizontal
// indices are i (x) and j (y); the vertical index k runs from 0 at the
// bottom of the domain to Nz-1 at the top. Velocity components are
// staggered in the usual C-grid arrangement: u(k,j,i) sits on the western
// x-face of cell (k,j,i), v on the southern y-face, and w on the lower
// z-face; tracers and diffusivities sit at cell centers.
type Grid struct {
	Nx, Ny, Nz int

	// ZF holds the Nz+1 z-face coordinates in ascending order [m];
	// ZF[Nz] is the sea surface and ZF[0] the bottom.
	ZF []float64

	// ZC holds the Nz cell-center coordinates [m].
	ZC []float64
}

// NewGrid creates a grid with the given horizontal extent and vertical
// face coordinates zF, which must be in strictly ascending order.
func NewGrid(nx, ny int, zF []float64) (*Grid, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("oceanmix: grid extent (%d, %d) must be positive", nx, ny)
	}
	if len(zF) < 2 {
		return nil, fmt.Errorf("oceanmix: need at least 2 z-face coordinates; got %d", len(zF))
	}
	for k := 1; k < len(zF); k++ {
		if zF[k] <= zF[k-1] {
			return nil, fmt.Errorf("oceanmix: z-face coordinates must be ascending; zF[%d]=%g, zF[%d]=%g",
				k-1, zF[k-1], k, zF[k])
		}
	}
	g := &Grid{
		Nx: nx,
		Ny: ny,
		Nz: len(zF) - 1,
		ZF: zF,
	}
	g.ZC = make([]float64, g.Nz)
	for k := 0; k < g.Nz; k++ {
		g.ZC[k] = (zF[k] + zF[k+1]) / 2.
	}
	return g, nil
}

// UniformGrid creates a grid with nz equally spaced vertical cells
// spanning depth meters, with the sea surface at z = 0.
func UniformGrid(nx, ny, nz int, depth float64) *Grid {
	zF := make([]float64, nz+1)
	for k := range zF {
		zF[k] = -depth + depth*float64(k)/float64(nz)
	}
	g, err := NewGrid(nx, ny, zF)
	if err != nil {
		panic(err)
	}
	return g
}

// Dz returns the vertical spacing of cell k. Indices outside the domain
// are clamped so that halo cells take the spacing of the nearest
// interior cell.
func (g *Grid) Dz(k int) float64 {
	if k < 0 {
		k = 0
	} else if k > g.Nz-1 {
		k = g.Nz - 1
	}
	return g.ZF[k+1] - g.ZF[k]
}

// DzCenters returns the distance between the centers of the cells on
// either side of z-face k. At the boundary faces, where only one center
// exists, the spacing of the adjacent cell is used.
func (g *Grid) DzCenters(k int) float64 {
	if k <= 0 {
		return g.Dz(0)
	}
	if k >= g.Nz {
		return g.Dz(g.Nz - 1)
	}
	return g.ZC[k] - g.ZC[k-1]
}

// MinDz returns the smallest vertical cell spacing.
func (g *Grid) MinDz() float64 {
	m := g.Dz(0)
	for k := 1; k < g.Nz; k++ {
		m = min(m, g.Dz(k))
	}
	return m
}

// Top returns the z-coordinate of the sea surface.
func (g *Grid) Top() float64 { return g.ZF[g.Nz] }

// Bottom returns the z-coordinate of the domain bottom.
func (g *Grid) Bottom() float64 { return g.ZF[0] }
