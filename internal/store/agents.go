package store

import (
	"slices"

	"github.com/spigell/hiring-desk/internal/recruiting"
)

func (s *Store) AddAgent(agent *recruiting.Agent) {
	s.apply(func(prev *State) *State {
		next := *prev
		next.Agents = slices.Insert(slices.Clone(prev.Agents), 0, agent)
		return &next
	})
}

func (s *Store) GetAgent(id string) (*recruiting.Agent, bool) {
	a := recruiting.FindAgent(s.Snapshot().Agents, id)
	return a, a != nil
}

// UpdateAgent replaces the agent with the same id. It reports whether it existed.
func (s *Store) UpdateAgent(agent *recruiting.Agent) bool {
	return s.apply(func(prev *State) *State {
		idx := slices.IndexFunc(prev.Agents, func(a *recruiting.Agent) bool { return a.ID == agent.ID })
		if idx < 0 {
			return nil
		}

		next := *prev
		next.Agents = slices.Clone(prev.Agents)
		next.Agents[idx] = agent
		return &next
	})
}

// DeleteAgent removes the agent. It reports whether it existed.
func (s *Store) DeleteAgent(id string) bool {
	return s.apply(func(prev *State) *State {
		idx := slices.IndexFunc(prev.Agents, func(a *recruiting.Agent) bool { return a.ID == id })
		if idx < 0 {
			return nil
		}

		next := *prev
		next.Agents = slices.Delete(slices.Clone(prev.Agents), idx, idx+1)
		return &next
	})
}
