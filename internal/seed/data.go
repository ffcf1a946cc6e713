package seed

import (
	"github.com/Alijeyrad/dental_backend/internal/service/catalog"
	"github.com/Alijeyrad/dental_backend/internal/service/client"
)

func str(s string) *string { return &s }

var services = []catalog.CreateRequest{
	{Name: "Regular Checkup", Description: "Comprehensive dental examination and cleaning", Price: 1800, Duration: "45-60 min"},
	{Name: "Deep Cleaning", Description: "Professional dental cleaning and scaling", Price: 5600, Duration: "60-90 min"},
	{Name: "Teeth Whitening", Description: "Professional teeth whitening treatment", Price: 8700, Duration: "30-60 min"},
	{Name: "Dental Implant", Description: "Single tooth implant replacement", Price: 70000, Duration: "2-6 months"},
	{Name: "Tooth Extraction", Description: "Safe removal of damaged or decayed teeth", Price: 5000, Duration: "30-45 min"},
	{Name: "Emergency Care", Description: "Emergency dental treatment and pain relief", Price: 8000, Duration: "Varies"},
}

var clients = []client.CreateRequest{
	{
		FirstName: "Juan", LastName: "Dela Cruz", Email: "juan.delacruz@email.com", Phone: "+63-917-123-4567",
		DateOfBirth: str("1985-03-15"), Address: str("123 Rizal Avenue, Barangay 1, Manila"),
		EmergencyContact: str("Maria Dela Cruz +63-917-123-4568"),
	},
	{
		FirstName: "Maria", LastName: "Santos", Email: "maria.santos@email.com", Phone: "+63-927-234-5678",
		DateOfBirth: str("1990-07-22"), Address: str("456 Bonifacio Street, Barangay 2, Quezon City"),
	},
	{
		FirstName: "Antonio", LastName: "Garcia", Email: "antonio.garcia@email.com", Phone: "+63-937-345-6789",
		DateOfBirth: str("1978-11-08"), Address: str("789 Mabini Road, Barangay 3, Cebu City"),
		EmergencyContact: str("Elena Garcia +63-937-345-6790"), MedicalHistory: str("Allergic to penicillin"),
	},
	{
		FirstName: "Cristina", LastName: "Reyes", Email: "cristina.reyes@email.com", Phone: "+63-947-456-7890",
		DateOfBirth: str("1995-01-30"),
	},
	{
		FirstName: "Roberto", LastName: "Mendoza", Email: "roberto.mendoza@email.com", Phone: "+63-957-567-8901",
		DateOfBirth: str("1982-09-12"), Address: str("321 Aguinaldo Boulevard, Barangay 4, Davao City"),
	},
	{
		FirstName: "Luzviminda", LastName: "Torres", Email: "luz.torres@email.com", Phone: "+63-967-678-9012",
		DateOfBirth: str("1988-05-18"), Address: str("654 Osmena Street, Barangay 5, Makati City"),
		MedicalHistory: str("Diabetic"),
	},
	{
		FirstName: "Fernando", LastName: "Villanueva", Email: "fernando.v@email.com", Phone: "+63-977-789-0123",
		DateOfBirth: str("1975-12-03"),
	},
	{
		FirstName: "Jennifer", LastName: "Aquino", Email: "jennifer.aquino@email.com", Phone: "+63-987-890-1234",
		DateOfBirth: str("1992-04-25"), Address: str("987 Laurel Avenue, Barangay 6, Pasig City"),
		EmergencyContact: str("Mark Aquino +63-987-890-1235"),
	},
	{
		FirstName: "Jose", LastName: "Rodriguez", Email: "jose.rodriguez@email.com", Phone: "+63-997-901-2345",
		DateOfBirth: str("1980-08-14"),
	},
	{
		FirstName: "Rosario", LastName: "Castro", Email: "rosario.c@email.com", Phone: "+63-907-012-3456",
		DateOfBirth: str("1987-02-28"), Address: str("147 Roxas Boulevard, Barangay 7, Bacolod City"),
		MedicalHistory: str("Hypertension"),
	},
	{
		FirstName: "Carlos", LastName: "Fernandez", Email: "carlos.fernandez@email.com", Phone: "+63-917-123-4569",
		DateOfBirth: str("1993-06-10"),
	},
	{
		FirstName: "Angelica", LastName: "Morales", Email: "angelica.morales@email.com", Phone: "+63-927-234-5679",
		DateOfBirth: str("1984-10-05"), Address: str("258 Quezon Avenue, Barangay 8, Iloilo City"),
	},
	{
		FirstName: "Ricardo", LastName: "Santiago", Email: "ricardo.santiago@email.com", Phone: "+63-937-345-6780",
		DateOfBirth: str("1979-03-20"), EmergencyContact: str("Carmen Santiago +63-937-345-6781"),
	},
}

// demoAppointment is a demo booking. Services are 1-based positions in the
// services slice above.
type demoAppointment struct {
	services []int
	date     string
	time     string
	status   string
	notes    *string
}

var appointments = []demoAppointment{
	{services: []int{1}, date: "2025-10-05", time: "09:00", status: "completed", notes: str("Regular maintenance checkup")},
	{services: []int{2}, date: "2025-10-07", time: "14:00", status: "completed"},
	{services: []int{1, 3}, date: "2025-10-10", time: "10:30", status: "scheduled"},
	{services: []int{5}, date: "2025-10-12", time: "11:00", status: "scheduled", notes: str("Wisdom tooth extraction")},
	{services: []int{1}, date: "2025-10-15", time: "13:00", status: "scheduled"},
	{services: []int{3}, date: "2025-10-18", time: "15:30", status: "scheduled"},
	{services: []int{2}, date: "2025-10-20", time: "09:30", status: "scheduled"},
	{services: []int{1}, date: "2025-10-22", time: "16:00", status: "scheduled"},
	{services: []int{6}, date: "2025-09-25", time: "08:00", status: "completed", notes: str("Severe tooth pain - emergency treatment")},
	{services: []int{4}, date: "2025-11-01", time: "10:00", status: "scheduled", notes: str("Initial consultation for implant")},
	{services: []int{1, 2}, date: "2025-10-25", time: "11:30", status: "scheduled"},
	{services: []int{3}, date: "2025-10-28", time: "14:30", status: "scheduled"},
	{services: []int{1}, date: "2025-11-05", time: "09:00", status: "scheduled"},
	{services: []int{5}, date: "2025-11-08", time: "13:30", status: "scheduled"},
	{services: []int{2}, date: "2025-11-12", time: "10:00", status: "scheduled"},
	{services: []int{1}, date: "2025-11-15", time: "15:00", status: "scheduled"},
	{services: []int{3, 1}, date: "2025-11-18", time: "11:00", status: "scheduled"},
	{services: []int{6}, date: "2025-11-20", time: "16:30", status: "scheduled", notes: str("Follow-up emergency visit")},
}
