package store

import "github.com/spigell/hiring-desk/internal/recruiting"

// Stats are the dashboard overview counters.
type Stats struct {
	Jobs          int `json:"jobs"`
	ActiveJobs    int `json:"activeJobs"`
	Candidates    int `json:"candidates"`
	Scored        int `json:"scored"`
	CallsAnswered int `json:"callsAnswered"`
	CallsInFlight int `json:"callsInFlight"`
	Agents        int `json:"agents"`
	ActiveAgents  int `json:"activeAgents"`
}

func (s *Store) Stats() Stats {
	s.mu.Lock()
	state, inFlight := s.state, s.pending
	s.mu.Unlock()

	stats := Stats{
		Jobs:          len(state.Jobs),
		Candidates:    len(state.Candidates),
		CallsInFlight: inFlight,
		Agents:        len(state.Agents),
	}
	for _, j := range state.Jobs {
		if j.Status == recruiting.JobActive {
			stats.ActiveJobs++
		}
	}
	for _, c := range state.Candidates {
		if c.Scored() {
			stats.Scored++
		}
		if c.Status == recruiting.CandidateAnswered {
			stats.CallsAnswered++
		}
	}
	for _, a := range state.Agents {
		if a.Status == recruiting.AgentActive {
			stats.ActiveAgents++
		}
	}
	return stats
}
