package models

// StaffMember represents one entry of the staff feed. Active members carry
// CurrentPosition; former members carry their PastPositions history.
type StaffMember struct {
	Name            string   `json:"Name"`
	Image           string   `json:"Image"`
	Description     string   `json:"Description"`
	IsActive        bool     `json:"IsActive"`
	CurrentPosition string   `json:"CurrentPosition,omitempty"`
	PastPositions   []string `json:"PastPositions,omitempty"`
}
