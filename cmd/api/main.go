// @title e-Resik API
// @description Recycling-rewards backend for the e-Resik community dashboard
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/eresik/eresik/internal/api"
	"github.com/eresik/eresik/internal/service"
	"github.com/eresik/eresik/internal/store"
	"github.com/eresik/eresik/pkg/cleanup"
	"github.com/eresik/eresik/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()

	cfg := config.New()
	seed := store.DefaultSeed()

	usersStore := store.NewUsersStore(seed.User)
	requestsStore := store.NewRequestsStore(seed.Requests)
	missionsStore := store.NewMissionsStore(seed.Missions)
	notificationsStore := store.NewNotificationsStore(seed.Notifications)
	inventoryStore := store.NewInventoryStore(seed.Stock, seed.Sales)
	referenceStore := store.NewReferenceStore(seed)

	rules := service.NewRewardRules(
		cfg.GetFloat("CO2_KG_PER_KG_WASTE", service.DefaultCO2PerKgWaste),
		cfg.GetFloat("TREES_PER_KG_WASTE", service.DefaultTreesPerKgWaste),
		referenceStore.Categories(),
	)

	notificationsService := service.NewNotificationsService(notificationsStore)
	rewardsService := service.NewRewardsService(usersStore, notificationsService, rules)
	missionsService := service.NewMissionsService(missionsStore, rewardsService, notificationsService)
	requestsService := service.NewRequestsService(requestsStore, rewardsService, missionsService, notificationsService, rules)

	serv := api.New(&api.ServicesList{
		RequestsService:      requestsService,
		MissionsService:      missionsService,
		RewardsService:       rewardsService,
		NotificationsService: notificationsService,
		InventoryService:     service.NewInventoryService(inventoryStore),
		ReportsService:       service.NewReportsService(referenceStore),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"), cfg.GetString("CORS_ORIGIN"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
