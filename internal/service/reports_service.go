package service

import (
	"context"
	"log"

	"github.com/eresik/eresik/internal/store"
	"github.com/eresik/eresik/pkg/entity"
)

// ReportsService passes the read-only seed collections through to the API.
type ReportsService struct {
	repo store.ReferenceStoreI
}

func NewReportsService(referenceStore store.ReferenceStoreI) *ReportsService {
	if referenceStore == nil {
		log.Fatal("provided nil referenceStore")
	}
	return &ReportsService{
		repo: referenceStore,
	}
}

func (rs *ReportsService) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	return rs.repo.Leaderboard(), nil
}

func (rs *ReportsService) KPI(ctx context.Context) (entity.KPIData, error) {
	return rs.repo.KPI(), nil
}

func (rs *ReportsService) RegisteredUsers(ctx context.Context) ([]entity.RegisteredUser, error) {
	return rs.repo.RegisteredUsers(), nil
}

func (rs *ReportsService) Categories(ctx context.Context) ([]entity.CategoryInfo, error) {
	return rs.repo.Categories(), nil
}
