package repository

import "eldercare-api/internal/domain/entity"

// Static catalogs the app ships with. There is no provider backend; these
// are the records every screen reads.

var doctorCatalog = []entity.Doctor{
	{
		ID:        "1",
		Name:      "Dr. David Patel",
		Specialty: "Cardiologist",
		Clinic:    "Cardiology Center, USA",
		Rating:    5,
		Reviews:   1872,
		Image:     "/assets/img/doctors/david-patel.png",
	},
	{
		ID:        "2",
		Name:      "Dr. Jessica Turner",
		Specialty: "General",
		Clinic:    "Women's Clinic,Seattle,USA",
		Rating:    4.9,
		Reviews:   127,
		Image:     "/assets/img/doctors/jessica-turner.png",
	},
	{
		ID:        "3",
		Name:      "Dr. Michael Johnson",
		Specialty: "Dentist",
		Clinic:    "Maple Associates, NY,USA",
		Rating:    4.7,
		Reviews:   5223,
		Image:     "/assets/img/doctors/michael-johnson.png",
	},
	{
		ID:        "4",
		Name:      "Dr. Emily Walker",
		Specialty: "Pediatrics",
		Clinic:    "Serenity Pediatrics Clinic",
		Rating:    5,
		Reviews:   405,
		Image:     "/assets/img/doctors/emily-walker.png",
	},
	{
		ID:        "5",
		Name:      "Dr. Sarah Chen",
		Specialty: "Pediatrics",
		Clinic:    "Children First Medical Center",
		Rating:    4.9,
		Reviews:   728,
		Image:     "/assets/img/doctors/sarah-chen.png",
	},
}

var doctorSpecialties = []string{"All", "General", "Cardiologist", "Dentist", "Pediatrics"}

var hospitalCatalog = []entity.Hospital{
	{
		ID:        "1",
		Name:      "Sunrise Health Clinic",
		Address:   "123 Oak Street, CA 98765",
		Type:      "Health Clinic",
		Rating:    5.0,
		Reviews:   58,
		Distance:  "2.5 km/40min",
		Image:     "/assets/img/hospitals/sunrise-health.png",
		Latitude:  37.78825,
		Longitude: -122.4324,
	},
	{
		ID:        "2",
		Name:      "Golden Cardiology",
		Address:   "555 Bridge Street, CA 12345",
		Type:      "Cardiology",
		Rating:    4.9,
		Reviews:   103,
		Distance:  "2.5 km/40min",
		Image:     "/assets/img/hospitals/golden-cardiology.png",
		Latitude:  37.78525,
		Longitude: -122.4324,
	},
}
