package entity

// Doctor represents a provider record from the doctor catalog
type Doctor struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Clinic    string  `json:"clinic"`
	Rating    float64 `json:"rating"`
	Reviews   int     `json:"reviews"`
	Image     string  `json:"image"`
}
