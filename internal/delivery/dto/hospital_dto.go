package dto

// Response DTOs

type HospitalResponse struct {
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

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
