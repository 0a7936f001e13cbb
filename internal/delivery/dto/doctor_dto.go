package dto

// Response DTOs

type DoctorResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Clinic    string  `json:"clinic"`
	Rating    float64 `json:"rating"`
	Reviews   int     `json:"reviews"`
	Image     string  `json:"image"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
}
