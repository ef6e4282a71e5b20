package committer

import "cloud.google.com/go/spanner"

// Plan collects the mutations of one save workflow. All mutations in a plan
// are applied in a single read-write transaction; a plan that fails to apply
// leaves no trace in durable state.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add appends a mutation. Nil mutations are ignored so repos can return nil
// for no-op updates.
func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

// AddAll appends a batch of mutations, skipping nils.
func (p *Plan) AddAll(ms []*spanner.Mutation) {
	for _, m := range ms {
		p.Add(m)
	}
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

// Size returns the number of collected mutations.
func (p *Plan) Size() int {
	return len(p.mutations)
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
