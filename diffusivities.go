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
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// DiffusivityFields holds the three eddy diffusivity fields computed by
// the closure. They are allocated once, live as long as the model, and
// are rewritten in place by every update pass.
type DiffusivityFields struct {
	Ku *Field // momentum diffusivity [m²/s]
	Kc *Field // tracer diffusivity [m²/s]
	Ke *Field // TKE diffusivity [m²/s]
}

// NewDiffusivityFields allocates a diffusivity-field bundle on grid g.
func NewDiffusivityFields(g *Grid) *DiffusivityFields {
	return &DiffusivityFields{
		Ku: NewField(g),
		Kc: NewField(g),
		Ke: NewField(g),
	}
}

// UpdateDiffusivities recomputes the three diffusivity fields from the
// current velocity and tracer state in one data-parallel elementwise
// pass. Every cell reads only the previous step's fields, so the pass
// needs no internal synchronization; the function returns only after all
// cells, halos included, have been written, which is the completion
// barrier required before flux or tendency evaluation.
func (c *Closure) UpdateDiffusivities(m *Model, d *DiffusivityFields) {
	g := m.Grid
	nprocs := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for p := 0; p < nprocs; p++ {
		go func(p int) {
			defer wg.Done()
			for j := p; j < g.Ny; j += nprocs {
				for i := 0; i < g.Nx; i++ {
					// The convective diffusivity formula uses the
					// surface buoyancy flux of the whole column.
					qbTop := m.Buoyancy.SurfaceBuoyancyFlux(m, j, i, m.Clock)
					for k := 0; k < g.Nz; k++ {
						c.updateCell(m, d, qbTop, k, j, i)
					}
				}
			}
		}(p)
	}
	wg.Wait()
	d.Ku.FillHalos()
	d.Kc.FillHalos()
	d.Ke.FillHalos()
}

func (c *Closure) updateCell(m *Model, d *DiffusivityFields, qbTop float64, k, j, i int) {
	e := m.tke.Data.Get(k, j, i)
	N2 := m.centerBuoyancyGradient(k, j, i)
	shear2 := m.shearSquared(k, j, i)
	ri := richardsonNumber(N2, shear2)

	σu := c.Scaling.Momentum(ri)
	σc := c.Scaling.Tracer(ri)
	σe := c.Scaling.TKE(ri)

	convective := c.ConvectiveAdjustment != nil && N2 < 0
	if convective {
		σu = c.ConvectiveAdjustment.Ku
		σc = c.ConvectiveAdjustment.Kc
		σe = c.ConvectiveAdjustment.Ke
	}

	var K float64
	if convective {
		if qbTop > 0 {
			K = e * e / qbTop
		}
	} else {
		l := c.dissipationLength(m.Grid, k, e, N2)
		K = l * math.Sqrt(math.Max(0, e))
	}

	d.Ku.Set(σu*K, k, j, i)
	d.Kc.Set(σc*K, k, j, i)
	d.Ke.Set(σe*K, k, j, i)
}

// StableDt returns the longest timestep for which explicit vertical
// diffusion with these diffusivities is stable under the Von Neumann
// criterion. It is +Inf when all diffusivities are zero.
func (d *DiffusivityFields) StableDt(g *Grid) float64 {
	const cMax = 1.
	kMax := max(floats.Max(d.Ku.Data().Elements),
		floats.Max(d.Kc.Data().Elements),
		floats.Max(d.Ke.Data().Elements))
	if kMax <= 0 {
		return math.Inf(1)
	}
	dz := g.MinDz()
	return cMax * dz * dz / 2. / kMax
}
