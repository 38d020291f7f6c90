package service_test

import (
	"testing"

	"github.com/eresik/eresik/internal/service"
	"github.com/eresik/eresik/internal/store"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

// fixture wires a full service graph over fresh seeded in-memory stores, one
// isolated instance per test.
type fixture struct {
	users         *store.UsersStore
	requests      *store.RequestsStore
	missions      *store.MissionsStore
	notifications *store.NotificationsStore
	inventory     *store.InventoryStore

	rules *service.RewardRules

	rewardsService       *service.RewardsService
	missionsService      *service.MissionsService
	requestsService      *service.RequestsService
	notificationsService *service.NotificationsService
	inventoryService     *service.InventoryService
}

func newFixture() *fixture {
	seed := store.DefaultSeed()
	f := &fixture{
		users:         store.NewUsersStore(seed.User),
		requests:      store.NewRequestsStore(seed.Requests),
		missions:      store.NewMissionsStore(seed.Missions),
		notifications: store.NewNotificationsStore(seed.Notifications),
		inventory:     store.NewInventoryStore(seed.Stock, seed.Sales),
		rules: service.NewRewardRules(
			service.DefaultCO2PerKgWaste,
			service.DefaultTreesPerKgWaste,
			seed.Categories,
		),
	}
	f.notificationsService = service.NewNotificationsService(f.notifications)
	f.rewardsService = service.NewRewardsService(f.users, f.notificationsService, f.rules)
	f.missionsService = service.NewMissionsService(f.missions, f.rewardsService, f.notificationsService)
	f.requestsService = service.NewRequestsService(f.requests, f.rewardsService, f.missionsService, f.notificationsService, f.rules)
	f.inventoryService = service.NewInventoryService(f.inventory)
	return f
}
