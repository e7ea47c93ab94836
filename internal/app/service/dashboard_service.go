package service

import (
	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/repository"
)

type DashboardService interface {
	Stats() model.DashboardStats
}

type dashboardService struct {
	customerRepo  repository.CustomerRepository
	quotationRepo repository.QuotationRepository
	receiptRepo   repository.ReceiptRepository
	revenue       []model.MonthlyRevenue
}

// NewDashboardService takes the fixed monthly revenue series shown on the chart
func NewDashboardService(
	customerRepo repository.CustomerRepository,
	quotationRepo repository.QuotationRepository,
	receiptRepo repository.ReceiptRepository,
	revenue []model.MonthlyRevenue,
) DashboardService {
	return &dashboardService{
		customerRepo:  customerRepo,
		quotationRepo: quotationRepo,
		receiptRepo:   receiptRepo,
		revenue:       revenue,
	}
}

func (s *dashboardService) Stats() model.DashboardStats {
	var stats model.DashboardStats

	for _, r := range s.receiptRepo.FindAll() {
		stats.TotalRevenue += r.Amount
	}
	for _, q := range s.quotationRepo.FindAll() {
		if q.Status == model.QuotationStatusDraft || q.Status == model.QuotationStatusSent {
			stats.ActiveQuotations++
		}
	}
	customers := s.customerRepo.FindAll()
	stats.TotalCustomers = len(customers)
	for _, c := range customers {
		if c.Status == model.CustomerStatusVerified {
			stats.VerifiedCustomers++
		}
	}
	stats.Revenue = append([]model.MonthlyRevenue(nil), s.revenue...)

	return stats
}
