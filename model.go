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

// Package oceanmix implements a turbulence closure that computes eddy
// diffusivity fields for momentum, tracers, and a prognostic
// turbulent-kinetic-energy (TKE) tracer, closing the Reynolds-averaged
// equations of a stratified, rotating ocean simulation. The closure
// supplies the vertical viscous and diffusive fluxes, the TKE source
// terms, and the surface TKE flux boundary condition; advection, the
// pressure solve, and time integration belong to external collaborators.
package oceanmix

import "fmt"

// TracerKind distinguishes the TKE tracer from ordinary tracers.
type TracerKind int

const (
	// OrdinaryTracer is any tracer without special treatment.
	OrdinaryTracer TracerKind = iota

	// TurbulentKineticEnergy marks the prognostic TKE tracer. Exactly
	// one tracer of this kind must be present in every model.
	TurbulentKineticEnergy
)

// A Tracer is a named cell-centered prognostic field.
type Tracer struct {
	Name string
	Kind TracerKind
	Data *Field
}

// NewTracer creates an ordinary tracer with the given name. Its data
// field is allocated at model construction if left nil.
func NewTracer(name string) *Tracer {
	return &Tracer{Name: name, Kind: OrdinaryTracer}
}

// NewTKETracer creates the turbulent-kinetic-energy tracer, named "e" by
// convention.
func NewTKETracer() *Tracer {
	return &Tracer{Name: "e", Kind: TurbulentKineticEnergy}
}

// Model holds the state the closure operates on: the grid, the velocity
// and tracer fields, the buoyancy model, the closure sequence, and the
// diffusivity-field bundles (one per closure, allocated once and
// rewritten in place every step).
type Model struct {
	Grid    *Grid
	U, V, W *Field
	Tracers []*Tracer

	Buoyancy BuoyancyModel
	Closures *ClosureSequence

	// Diffusivities[n] is the bundle written by the n-th closure in
	// the sequence.
	Diffusivities []*DiffusivityFields

	BCs BoundaryConditionSet

	// Clock is the simulation time [s], advanced by the external
	// integrator.
	Clock float64

	tke     *Tracer
	tracers map[string]*Tracer
}

// NewModel builds a model. The tracer set must contain the TKE tracer;
// construction fails otherwise. Velocity fields and any nil tracer data
// fields are allocated, and the boundary-condition set is augmented with
// the surface TKE flux generated by the first closure.
func NewModel(g *Grid, buoyancy BuoyancyModel, closures *ClosureSequence,
	tracers []*Tracer, bcs BoundaryConditionSet) (*Model, error) {

	m := &Model{
		Grid:     g,
		U:        NewField(g),
		V:        NewField(g),
		W:        NewField(g),
		Tracers:  tracers,
		Buoyancy: buoyancy,
		Closures: closures,
		tracers:  make(map[string]*Tracer, len(tracers)),
	}
	for _, tr := range tracers {
		if tr.Data == nil {
			tr.Data = NewField(g)
		}
		if _, ok := m.tracers[tr.Name]; ok {
			return nil, fmt.Errorf("oceanmix: duplicate tracer %q", tr.Name)
		}
		m.tracers[tr.Name] = tr
		if tr.Kind == TurbulentKineticEnergy {
			if m.tke != nil {
				return nil, fmt.Errorf("oceanmix: more than one turbulent kinetic energy tracer")
			}
			m.tke = tr
		}
	}
	if m.tke == nil {
		return nil, fmt.Errorf("oceanmix: tracer set does not contain a turbulent kinetic energy tracer")
	}

	if bcs == nil {
		bcs = make(BoundaryConditionSet)
	}
	augmented, err := closures.First.AddSurfaceTKEFlux(bcs, g, tracers, buoyancy)
	if err != nil {
		return nil, err
	}
	m.BCs = augmented
	m.tke.Data.AttachBCs(m.BCs[m.tke.Name])

	m.Diffusivities = make([]*DiffusivityFields, closures.Len())
	for n := range m.Diffusivities {
		m.Diffusivities[n] = NewDiffusivityFields(g)
	}
	return m, nil
}

// Tracer returns the tracer with the given name, or nil.
func (m *Model) Tracer(name string) *Tracer { return m.tracers[name] }

// TKE returns the turbulent-kinetic-energy tracer.
func (m *Model) TKE() *Tracer { return m.tke }

// UpdateTurbulence runs the diffusivity update pass of every closure in
// the sequence, in order, each over the whole grid with a completion
// barrier before the next begins. It is called once per step, after the
// velocity and tracer fields are updated and before any flux or tendency
// evaluation.
func (m *Model) UpdateTurbulence() {
	for n, c := range m.Closures.All() {
		c.UpdateDiffusivities(m, m.Diffusivities[n])
	}
}

// The TKE-specific terms of a closure sequence resolve against the first
// closure only; later closures contribute diffusivities but no TKE
// sources or surface flux.

// ShearProduction returns the TKE shear production at cell (k, j, i).
func (m *Model) ShearProduction(k, j, i int) float64 {
	return m.Closures.First.ShearProduction(m, m.Diffusivities[0], k, j, i)
}

// BuoyancyFlux returns the TKE buoyancy flux term at cell (k, j, i).
func (m *Model) BuoyancyFlux(k, j, i int) float64 {
	return m.Closures.First.BuoyancyFlux(m, m.Diffusivities[0], k, j, i)
}

// Dissipation returns the TKE dissipation at cell (k, j, i).
func (m *Model) Dissipation(k, j, i int) float64 {
	return m.Closures.First.Dissipation(m, k, j, i)
}

// SurfaceTKEFlux evaluates the generated surface TKE flux at column
// (j, i) and the current clock time.
func (m *Model) SurfaceTKEFlux(j, i int) float64 {
	return m.BCs.topFlux(m.tke.Name, m, j, i, m.Clock)
}

func max(vals ...float64) float64 {
	m := vals[0]
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}

func min(v1, v2 float64) float64 {
	if v1 < v2 {
		return v1
	}
	return v2
}
