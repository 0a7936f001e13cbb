package entity

// Hospital represents a medical center from the hospital catalog.
// Latitude/Longitude feed the map screen markers; Distance is the
// precomputed display label the home screen shows.
type Hospital struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Type      string  `json:"type"`
	Rating    float64 `json:"rating"`
	Reviews   int     `json:"reviews"`
	Distance  string  `json:"distance"`
	Image     string  `json:"image"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
