package usecase

import (
	"kirana-connect/internal/data/repository"
	"kirana-connect/internal/tracker"
	"kirana-connect/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Store StoreService
	Cart  CartService
	Order OrderService

	trackers *tracker.Manager
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	trackers := tracker.NewManager(log)

	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Store:    NewStoreService(repo, log),
		Cart:     NewCartService(repo, log),
		Order:    NewOrderService(repo, trackers, config, log),
		trackers: trackers,
	}
}

// Close shuts down every live delivery tracker
func (s *Service) Close() {
	s.trackers.Close()
}
