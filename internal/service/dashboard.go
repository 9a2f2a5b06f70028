package service

import (
	"context"

	"finai/internal/finance"
	"finai/internal/store"
)

type DashboardService struct {
	txs store.TransactionStore
}

func NewDashboardService(txs store.TransactionStore) *DashboardService {
	return &DashboardService{txs: txs}
}

// GetDashboard aggregates the user's transactions for month (YYYY-MM).
func (s *DashboardService) GetDashboard(ctx context.Context, userID, month string) (finance.DashboardResult, error) {
	start, err := finance.ParseMonth(month)
	if err != nil {
		return finance.DashboardResult{}, validationf("%s", err.Error())
	}
	from, to := finance.TrendWindow(start)
	txs, err := s.txs.List(ctx, userID, store.TransactionFilter{From: from, To: to})
	if err != nil {
		return finance.DashboardResult{}, err
	}
	return finance.BuildDashboard(txs, start), nil
}
