package recruiting

type AgentType string

const (
	AgentScreening  AgentType = "Screening"
	AgentScheduling AgentType = "Scheduling"
	AgentSupport    AgentType = "Support"
)

type AgentLanguage string

const (
	AgentEnglish   AgentLanguage = "English"
	AgentArabic    AgentLanguage = "Arabic"
	AgentBilingual AgentLanguage = "Bilingual"
)

type AgentStatus string

const (
	AgentActive AgentStatus = "Active"
	AgentIdle   AgentStatus = "Idle"
)

// Agent is a voice persona configuration. It is not linked to jobs or candidates.
type Agent struct {
	ID           string        `json:"id" mapstructure:"id"`
	Name         string        `json:"name" mapstructure:"name"`
	Type         AgentType     `json:"type" mapstructure:"type"`
	Language     AgentLanguage `json:"language" mapstructure:"language"`
	VoiceID      string        `json:"voiceId" mapstructure:"voiceId"`
	Status       AgentStatus   `json:"status" mapstructure:"status"`
	LastActive   string        `json:"lastActive" mapstructure:"lastActive"`
	Personality  string        `json:"personality" mapstructure:"personality"`
	Instructions string        `json:"instructions" mapstructure:"instructions"`
}

func (a *Agent) Clone() *Agent {
	if a == nil {
		return nil
	}
	out := *a
	return &out
}

// FindAgent returns the agent with the given id or nil.
func FindAgent(agents []*Agent, id string) *Agent {
	for _, a := range agents {
		if a.ID == id {
			return a
		}
	}
	return nil
}
