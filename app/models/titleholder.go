package models

// Titleholder represents one entry of the titleholders feed. Year is a
// string beginning with a four-digit year ("2024" or "2024-2025").
type Titleholder struct {
	Name        string `json:"Name"`
	Image       string `json:"Image"`
	Description string `json:"Description"`
	Active      bool   `json:"Active"`
	Prefix      string `json:"Prefix"`
	Year        string `json:"Year"`
}
