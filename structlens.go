package structlens

import (
	"github.com/structlens/structlens/layout"
	"github.com/structlens/structlens/typeexpr"
)

// Run is one analysis run: an architecture plus a request-scoped
// registry. Declarations are registered in a first pass without any
// sizing, so forward and mutual references all resolve once layouts are
// requested in the second pass.
//
// A Run is not safe for concurrent use; analyses that must run in
// parallel each get their own Run.
type Run struct {
	reg  *layout.Registry
	arch layout.Arch
}

func NewRun(arch layout.Arch) *Run {
	return &Run{reg: layout.NewRegistry(), arch: arch}
}

func (r *Run) Arch() layout.Arch { return r.arch }

// Registry exposes the run's registry for direct layout calls.
func (r *Run) Registry() *layout.Registry { return r.reg }

// Register records one declared type. Pass one: no sizes are computed.
func (r *Run) Register(name string, fields []layout.FieldDescriptor) {
	r.reg.Register(name, fields)
}

// RegisterAll records a batch of declarations in order.
func (r *Run) RegisterAll(defs []layout.StructDefinition) {
	for _, def := range defs {
		r.reg.Register(def.Name, def.Fields)
	}
}

// Reset clears the registry so the Run can be reused for a fresh pass.
// Stale definitions never survive a Reset.
func (r *Run) Reset() {
	r.reg.Clear()
}

// Layout computes the layout of one registered struct. Pass two.
func (r *Run) Layout(name string) (layout.StructLayout, bool) {
	def, ok := r.reg.Get(name)
	if !ok {
		return layout.StructLayout{}, false
	}
	return layout.Calculate(def.Name, def.Fields, r.reg, r.arch), true
}

// LayoutAll computes layouts for every registered struct, in
// registration order.
func (r *Run) LayoutAll() []layout.StructLayout {
	names := r.reg.Names()
	out := make([]layout.StructLayout, 0, len(names))
	for _, name := range names {
		if lay, ok := r.Layout(name); ok {
			out = append(out, lay)
		}
	}
	return out
}

// Optimize proposes a padding-minimizing reordering for one registered
// struct.
func (r *Run) Optimize(name string) (layout.OptimizationResult, bool) {
	lay, ok := r.Layout(name)
	if !ok {
		return layout.OptimizationResult{}, false
	}
	return layout.Optimize(lay, r.reg, r.arch), true
}

// Resolve answers an ad hoc size query for a raw type expression,
// against this run's registry and architecture.
func (r *Run) Resolve(expr string) layout.TypeSizeInfo {
	return layout.NewSizer(r.reg, r.arch).Resolve(typeexpr.Parse(expr))
}
