package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mecanica/internal/config"
	"mecanica/internal/database"
	"mecanica/internal/middleware"
	"mecanica/internal/modules/inventory"
	"mecanica/internal/modules/orders"
	"mecanica/internal/modules/registry"
	"mecanica/internal/modules/scheduling"
	"mecanica/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	clientRepo := repository.NewClientRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	serviceRepo := repository.NewCatalogServiceRepository(db)
	partRepo := repository.NewPartRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)

	registryService := registry.NewService(
		clientRepo, vehicleRepo, employeeRepo, serviceRepo, partRepo, supplierRepo, movementRepo,
	)
	registryHandler := registry.NewHandler(registryService)

	schedulingService := scheduling.NewService(appointmentRepo, vehicleRepo, serviceRepo)
	schedulingHandler := scheduling.NewHandler(schedulingService)

	inventoryService := inventory.NewService(movementRepo, partRepo, orderRepo, vehicleRepo)
	inventoryHandler := inventory.NewHandler(inventoryService)

	ordersService := orders.NewService(orderRepo, vehicleRepo, employeeRepo, serviceRepo, partRepo)
	ordersHandler := orders.NewHandler(ordersService)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		registryHandler.RegisterRoutes(api)
		schedulingHandler.RegisterRoutes(api)
		inventoryHandler.RegisterRoutes(api)
		ordersHandler.RegisterRoutes(api)

		// Liveness probe: process up vs datastore reachable.
		api.GET("/health", func(c *gin.Context) {
			status := gin.H{"app": true, "db": false}
			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.PingContext(c.Request.Context()); err == nil {
					status["db"] = true
				}
			}
			c.JSON(http.StatusOK, status)
		})
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
