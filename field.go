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

import "github.com/ctessum/sparse"

// fieldHalo is the number of halo cells on every side of a field.
const fieldHalo = 1

// Field is a 3-D scalar field on a Grid with a one-cell halo on every
// side. Indexing is (k, j, i) with k the vertical index; halo points are
// addressed with indices -1 and N. Boundary conditions may be attached
// for use by flux evaluation and halo filling.
type Field struct {
	data *sparse.DenseArray
	grid *Grid

	// BCs holds the boundary conditions attached to this field, if any.
	BCs *FieldBoundaryConditions
}

// NewField creates a zero-filled field on grid g.
func NewField(g *Grid) *Field {
	return &Field{
		data: sparse.ZerosDense(g.Nz+2*fieldHalo, g.Ny+2*fieldHalo, g.Nx+2*fieldHalo),
		grid: g,
	}
}

// Get returns the field value at (k, j, i).
func (f *Field) Get(k, j, i int) float64 {
	return f.data.Get(k+fieldHalo, j+fieldHalo, i+fieldHalo)
}

// Set sets the field value at (k, j, i).
func (f *Field) Set(v float64, k, j, i int) {
	f.data.Set(v, k+fieldHalo, j+fieldHalo, i+fieldHalo)
}

// Add adds v to the field value at (k, j, i).
func (f *Field) Add(v float64, k, j, i int) {
	f.data.AddVal(v, k+fieldHalo, j+fieldHalo, i+fieldHalo)
}

// Grid returns the grid this field is defined on.
func (f *Field) Grid() *Grid { return f.grid }

// Data returns the underlying dense array, including halo points.
func (f *Field) Data() *sparse.DenseArray { return f.data }

// Fill sets every point of the field, halo included, to v.
func (f *Field) Fill(v float64) {
	for i := range f.data.Elements {
		f.data.Elements[i] = v
	}
}

// FillHalos fills the halo points with the values of the nearest interior
// points (zero normal gradient).
func (f *Field) FillHalos() {
	g := f.grid
	clamp := func(k, lim int) int {
		if k < 0 {
			return 0
		}
		if k > lim-1 {
			return lim - 1
		}
		return k
	}
	for k := -fieldHalo; k < g.Nz+fieldHalo; k++ {
		for j := -fieldHalo; j < g.Ny+fieldHalo; j++ {
			for i := -fieldHalo; i < g.Nx+fieldHalo; i++ {
				ki, ji, ii := clamp(k, g.Nz), clamp(j, g.Ny), clamp(i, g.Nx)
				if ki == k && ji == j && ii == i {
					continue
				}
				f.Set(f.Get(ki, ji, ii), k, j, i)
			}
		}
	}
}

// AttachBCs attaches boundary conditions to the field.
func (f *Field) AttachBCs(b *FieldBoundaryConditions) { f.BCs = b }
