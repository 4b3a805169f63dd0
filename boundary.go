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

// A FluxBC evaluates a boundary flux for one field at horizontal index
// (j, i), given the full model state and the simulation clock t [s].
// Fluxes are positive in the +z direction, so a negative flux through the
// sea surface adds to the quantity below it.
type FluxBC interface {
	Flux(m *Model, j, i int, t float64) float64
}

// ConstantFlux is a FluxBC with the same value everywhere.
type ConstantFlux float64

// Flux implements FluxBC.
func (c ConstantFlux) Flux(m *Model, j, i int, t float64) float64 { return float64(c) }

// FluxFunc adapts a function to the FluxBC interface.
type FluxFunc func(m *Model, j, i int, t float64) float64

// Flux implements FluxBC.
func (f FluxFunc) Flux(m *Model, j, i int, t float64) float64 { return f(m, j, i, t) }

// FieldBoundaryConditions holds the flux boundary conditions for one
// field. A nil condition means no flux.
type FieldBoundaryConditions struct {
	Top, Bottom FluxBC

	// Lateral conditions, unused by the vertical closure itself but
	// preserved through boundary-condition augmentation.
	West, East, South, North FluxBC
}

// BoundaryConditionSet maps field names ("u", "v", and tracer names) to
// their boundary conditions.
type BoundaryConditionSet map[string]*FieldBoundaryConditions

// topFlux returns the top boundary flux for the named field, or zero if
// no condition is set.
func (b BoundaryConditionSet) topFlux(name string, m *Model, j, i int, t float64) float64 {
	fbc, ok := b[name]
	if !ok || fbc.Top == nil {
		return 0
	}
	return fbc.Top.Flux(m, j, i, t)
}
