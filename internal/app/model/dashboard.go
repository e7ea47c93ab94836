package model

// MonthlyRevenue is one bar of the dashboard revenue chart
type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type DashboardStats struct {
	TotalRevenue      int64            `json:"total_revenue"`
	ActiveQuotations  int              `json:"active_quotations"` // Draft + Sent
	TotalCustomers    int              `json:"total_customers"`
	VerifiedCustomers int              `json:"verified_customers"`
	Revenue           []MonthlyRevenue `json:"revenue"`
}

// View is a navigable page of the back office
type View struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Chrome bool   `json:"chrome"` // false renders without the admin sidebar
}

var Views = []View{
	{Name: "Dashboard", Path: "/", Chrome: true},
	{Name: "Inventory", Path: "/inventory", Chrome: true},
	{Name: "Customers", Path: "/customers", Chrome: true},
	{Name: "Quotations", Path: "/quotations", Chrome: true},
	{Name: "Receipts", Path: "/receipts", Chrome: true},
	{Name: "Leads", Path: "/leads", Chrome: true},
	{Name: "Shop", Path: "/shop", Chrome: false},
}
