package usecase

import (
	"path/filepath"
	"testing"

	"kirana-connect/internal/data/repository"
	"kirana-connect/internal/dto/request"
	"kirana-connect/internal/tracker"
	"kirana-connect/pkg/storage"
	"kirana-connect/pkg/utils"

	"go.uber.org/zap"
)

type testEnv struct {
	repo     *repository.Repository
	trackers *tracker.Manager
	config   *utils.Config

	auth  AuthService
	store StoreService
	cart  CartService
	order OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := zap.NewNop()
	users := storage.NewFileStore(filepath.Join(t.TempDir(), "users.json"))
	repo := repository.NewRepository(users, log)

	trackers := tracker.NewManager(log)
	t.Cleanup(trackers.Close)

	config := &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
		Delivery: utils.DeliveryConfig{
			EstimateMinutes: 0.5,
		},
	}

	return &testEnv{
		repo:     repo,
		trackers: trackers,
		config:   config,
		auth:     NewAuthService(repo, config, log),
		store:    NewStoreService(repo, log),
		cart:     NewCartService(repo, log),
		order:    NewOrderService(repo, trackers, config, log),
	}
}

func statusReq(status string) *request.UpdateOrderStatusRequest {
	return &request.UpdateOrderStatusRequest{Status: status}
}

// advanceTo walks the order through single-step transitions up to target
func (e *testEnv) advanceTo(t *testing.T, orderID string, target string) {
	t.Helper()

	for _, step := range []string{"Accepted", "Packed", "Out for Delivery", "Delivered"} {
		if _, err := e.order.UpdateStatus(t.Context(), orderID, statusReq(step)); err != nil {
			t.Fatalf("advance to %s: %v", step, err)
		}
		if step == target {
			return
		}
	}
}
