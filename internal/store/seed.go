package store

import "github.com/etimad/showroom-backend/internal/app/model"

// RevenueSeries is the fixed monthly revenue chart shown on the dashboard
var RevenueSeries = []model.MonthlyRevenue{
	{Month: "Jan", Revenue: 450000},
	{Month: "Feb", Revenue: 320000},
	{Month: "Mar", Revenue: 550000},
	{Month: "Apr", Revenue: 400000},
	{Month: "May", Revenue: 600000},
	{Month: "Jun", Revenue: 750000},
}

func strPtr(s string) *string { return &s }

// Seed returns the demo showroom the service boots with
func Seed() Snapshot {
	return Snapshot{
		Customers: []model.Customer{
			{
				ID:         "cust1",
				Name:       "Ahmed Al-Mansoor",
				Email:      "ahmed.m@example.com",
				Phone:      "+971 50 123 4567",
				Status:     model.CustomerStatusVerified,
				Notes:      "VIP customer, interested in SUVs.",
				JoinedDate: "2023-10-01",
			},
			{
				ID:         "cust2",
				Name:       "John Smith",
				Email:      "john.smith@example.com",
				Phone:      "+971 55 987 6543",
				Status:     model.CustomerStatusPending,
				Notes:      "Looking for a sedan for daily commute.",
				JoinedDate: "2023-10-15",
			},
			{
				ID:         "cust3",
				Name:       "Fatima Khaled",
				Email:      "fatima.k@example.com",
				Phone:      "+971 52 555 1234",
				Status:     model.CustomerStatusVerified,
				Notes:      "Returning customer.",
				JoinedDate: "2023-10-20",
			},
		},
		Cars: []model.Car{
			{
				ID: "car1", Make: "Toyota", Model: "Land Cruiser", Year: 2022, Mileage: 15000, Price: 310000,
				Status: model.CarStatusAvailable, Condition: "Excellent",
				Description: "VXR Twin Turbo, White exterior, Beige interior. Full option with dealer warranty remaining.",
				ImageURL:    "https://images.unsplash.com/photo-1594502184342-28f377407278?auto=format&fit=crop&q=80&w=800",
				VIN:         "JT1122334455",
			},
			{
				ID: "car2", Make: "BMW", Model: "X5 M50i", Year: 2023, Mileage: 5000, Price: 385000,
				Status: model.CarStatusReserved, Condition: "Like New",
				Description: "M Sport package, Carbon Black metallic, Tartufo Merino leather. Panoramic sunroof.",
				ImageURL:    "https://images.unsplash.com/photo-1555215695-3004980adade?auto=format&fit=crop&q=80&w=800",
			},
			{
				ID: "car3", Make: "Mercedes-Benz", Model: "G 63 AMG", Year: 2021, Mileage: 25000, Price: 750000,
				Status: model.CarStatusAvailable, Condition: "Excellent",
				Description: "Night Package, Matte Black wrap, Red interior. Full service history with agency.",
				ImageURL:    "https://images.unsplash.com/photo-1520031441872-26514dd970c3?auto=format&fit=crop&q=80&w=800",
			},
			{
				ID: "car4", Make: "Nissan", Model: "Patrol Platinum", Year: 2024, Mileage: 1200, Price: 345000,
				Status: model.CarStatusAvailable, Condition: "Like New",
				Description: "V8 engine, City Gold exterior. Zero accidents, first owner vehicle.",
				ImageURL:    "https://images.unsplash.com/photo-1626847037657-fd3622613ce3?auto=format&fit=crop&q=80&w=800",
			},
			{
				ID: "car5", Make: "Porsche", Model: "911 Carrera S", Year: 2020, Mileage: 18000, Price: 520000,
				Status: model.CarStatusSold, Condition: "Excellent",
				Description: "Guards Red, Sports Chrono Package, RS Spyder wheels.",
				ImageURL:    "https://images.unsplash.com/photo-1503376763036-066120622c74?auto=format&fit=crop&q=80&w=800",
			},
			{
				ID: "car6", Make: "Range Rover", Model: "Autobiography", Year: 2023, Mileage: 8500, Price: 890000,
				Status: model.CarStatusAvailable, Condition: "Like New",
				Description: "Long Wheelbase, Charente Grey, Perlino interior. Executive rear seating.",
				ImageURL:    "https://images.unsplash.com/photo-1606220838315-056192d5e927?auto=format&fit=crop&q=80&w=800",
			},
			{
				ID: "car7", Make: "Audi", Model: "RS Q8", Year: 2022, Mileage: 22000, Price: 595000,
				Status: model.CarStatusAvailable, Condition: "Excellent",
				Description: "Mythos Black, Carbon Ceramic brakes, Bang & Olufsen 3D Advanced Sound System.",
				ImageURL:    "https://images.unsplash.com/photo-1614200187524-dc4b392e4c49?auto=format&fit=crop&q=80&w=800",
			},
		},
		Leads: []model.Lead{
			{
				ID: "lead1", Name: "Michael Chen", Email: "m.chen@example.com", Phone: "+971 50 999 8888",
				Status: model.LeadStatusNew, InterestedInID: strPtr("car1"), LastContact: "2023-10-28",
			},
			{
				ID: "lead2", Name: "Sarah Jones", Email: "sarah.j@example.com", Phone: "+971 52 777 6666",
				Status: model.LeadStatusContacted, InterestedInID: strPtr("car2"), LastContact: "2023-10-27",
			},
		},
		Quotations: []model.Quotation{
			{
				ID: "q1", CustomerID: "cust1", CustomerName: "Ahmed Al-Mansoor",
				VehicleMake: "Toyota", VehicleModel: "Land Cruiser", VehicleYear: 2022, VIN: "JT1122334455",
				Price: 310000, Date: "2023-10-25", Status: model.QuotationStatusSent,
			},
			{
				ID: "q2", CustomerID: "cust2", CustomerName: "John Smith",
				VehicleMake: "Nissan", VehicleModel: "Altima", VehicleYear: 2020, VIN: "1N4AL3AP0C",
				Price: 55000, Date: "2023-10-26", Status: model.QuotationStatusDraft,
			},
		},
		Receipts: []model.Receipt{
			{
				ID: "r1", QuotationID: strPtr("q1"), CustomerName: "Ahmed Al-Mansoor",
				VehicleDescription: "2022 Toyota Land Cruiser", Amount: 310000, Date: "2023-10-27",
				PaymentMethod: model.PaymentMethodBankTransfer,
			},
		},
		Terms: DefaultTerms,
	}
}
