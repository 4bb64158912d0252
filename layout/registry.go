package layout

// Registry maps struct names to their declared field lists for one
// analysis run, so mutually referencing types can all be registered
// before any layout is computed.
//
// A Registry is request-scoped: build one per run, never share one
// across concurrent runs. It is not safe for concurrent use.
type Registry struct {
	defs  map[string]*StructDefinition
	order []string
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*StructDefinition)}
}

// Register records name's field list. Re-registering a name replaces its
// definition but keeps its original position in Names.
func (r *Registry) Register(name string, fields []FieldDescriptor) {
	if _, exists := r.defs[name]; !exists {
		r.order = append(r.order, name)
	}
	r.defs[name] = &StructDefinition{Name: name, Fields: fields}
}

// Get returns the definition registered under name.
func (r *Registry) Get(name string) (*StructDefinition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	return len(r.defs)
}

// Clear drops every definition. A run that reuses a Registry must call
// this first so stale entries never leak between runs.
func (r *Registry) Clear() {
	r.defs = make(map[string]*StructDefinition)
	r.order = r.order[:0]
}
