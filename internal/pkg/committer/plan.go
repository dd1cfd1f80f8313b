package committer

import "cloud.google.com/go/spanner"

// Plan collects the mutations of one logical write (aggregate row plus its
// outbox rows) so they can be applied in a single commit.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add appends a mutation to the plan. Nil mutations are ignored so repos can
// return nil for no-op updates.
func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Size() int {
	return len(p.mutations)
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
