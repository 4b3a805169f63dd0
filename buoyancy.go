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

// A BuoyancyModel evaluates buoyancy-related quantities from the model
// tracer state.
type BuoyancyModel interface {
	// BuoyancyGradient returns ∂b/∂z [1/s²] at z-face k of column (j, i).
	// Face indices run from 0 (bottom boundary) to Nz (surface); the
	// gradient across the boundary faces is zero.
	BuoyancyGradient(m *Model, k, j, i int) float64

	// SurfaceBuoyancyFlux returns the buoyancy flux [m²/s³] through the
	// sea surface at column (j, i) and time t. Positive values carry
	// buoyancy out of the ocean and destabilize the surface.
	SurfaceBuoyancyFlux(m *Model, j, i int, t float64) float64
}

// LinearBuoyancy computes buoyancy from temperature and salinity tracers
// with a linear equation of state, b = G·(Alpha·T − Beta·S). A missing
// tracer contributes nothing.
type LinearBuoyancy struct {
	G     float64 // gravitational acceleration [m/s²]
	Alpha float64 // thermal expansion coefficient [1/K]
	Beta  float64 // haline contraction coefficient [kg/g]

	// TemperatureName and SalinityName are the tracer names to read;
	// they default to "T" and "S".
	TemperatureName, SalinityName string
}

// DefaultLinearBuoyancy returns a LinearBuoyancy with standard seawater
// coefficients.
func DefaultLinearBuoyancy() *LinearBuoyancy {
	return &LinearBuoyancy{
		G:     9.80665, // m/s²
		Alpha: 1.67e-4, // 1/K
		Beta:  7.80e-4, // kg/g
	}
}

func (l *LinearBuoyancy) names() (string, string) {
	tn, sn := l.TemperatureName, l.SalinityName
	if tn == "" {
		tn = "T"
	}
	if sn == "" {
		sn = "S"
	}
	return tn, sn
}

// BuoyancyGradient implements BuoyancyModel.
func (l *LinearBuoyancy) BuoyancyGradient(m *Model, k, j, i int) float64 {
	if k <= 0 || k >= m.Grid.Nz {
		return 0
	}
	tn, sn := l.names()
	var db float64
	if tr := m.Tracer(tn); tr != nil {
		db += l.Alpha * (tr.Data.Get(k, j, i) - tr.Data.Get(k-1, j, i))
	}
	if tr := m.Tracer(sn); tr != nil {
		db -= l.Beta * (tr.Data.Get(k, j, i) - tr.Data.Get(k-1, j, i))
	}
	return l.G * db / m.Grid.DzCenters(k)
}

// SurfaceBuoyancyFlux implements BuoyancyModel. The flux is assembled
// from the top boundary fluxes of the temperature and salinity tracers.
func (l *LinearBuoyancy) SurfaceBuoyancyFlux(m *Model, j, i int, t float64) float64 {
	tn, sn := l.names()
	qT := m.BCs.topFlux(tn, m, j, i, t)
	qS := m.BCs.topFlux(sn, m, j, i, t)
	return l.G * (l.Alpha*qT - l.Beta*qS)
}

// BuoyancyTracer treats one tracer as buoyancy itself, with no equation
// of state.
type BuoyancyTracer struct {
	// Name is the buoyancy tracer name; it defaults to "b".
	Name string
}

func (b *BuoyancyTracer) name() string {
	if b.Name == "" {
		return "b"
	}
	return b.Name
}

// BuoyancyGradient implements BuoyancyModel.
func (b *BuoyancyTracer) BuoyancyGradient(m *Model, k, j, i int) float64 {
	if k <= 0 || k >= m.Grid.Nz {
		return 0
	}
	tr := m.Tracer(b.name())
	if tr == nil {
		return 0
	}
	return (tr.Data.Get(k, j, i) - tr.Data.Get(k-1, j, i)) / m.Grid.DzCenters(k)
}

// SurfaceBuoyancyFlux implements BuoyancyModel.
func (b *BuoyancyTracer) SurfaceBuoyancyFlux(m *Model, j, i int, t float64) float64 {
	return m.BCs.topFlux(b.name(), m, j, i, t)
}
