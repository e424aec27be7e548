package main

import (
	"context"
	"log"
	"time"

	"mecanica/internal/config"
	"mecanica/internal/database"
	"mecanica/internal/domain"
	"mecanica/internal/modules/inventory"
	"mecanica/internal/modules/orders"
	"mecanica/internal/modules/registry"
	"mecanica/internal/modules/scheduling"
	"mecanica/internal/repository"
)

// Seeds a development database with a small, deterministic workshop
// dataset. Everything goes through the module services so the seeded data
// satisfies the same invariants production writes do.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	log.Println("Cleaning old data...")
	for _, table := range []string{
		"stock_movements", "payments", "order_part_items", "order_service_items",
		"service_orders", "appointments", "supplier_parts", "suppliers",
		"parts", "catalog_services", "vehicles", "employees", "clients",
	} {
		db.Exec("DELETE FROM " + table)
	}

	ctx := context.Background()

	clientRepo := repository.NewClientRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	serviceRepo := repository.NewCatalogServiceRepository(db)
	partRepo := repository.NewPartRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)

	reg := registry.NewService(clientRepo, vehicleRepo, employeeRepo, serviceRepo, partRepo, supplierRepo, movementRepo)
	sched := scheduling.NewService(appointmentRepo, vehicleRepo, serviceRepo)
	inv := inventory.NewService(movementRepo, partRepo, orderRepo, vehicleRepo)
	ord := orders.NewService(orderRepo, vehicleRepo, employeeRepo, serviceRepo, partRepo)

	log.Println("Creating clients...")
	clientSeed := []registry.CreateClientRequest{
		{Name: "João da Silva", TaxID: "123.456.789-00"},
		{Name: "Maria Santos", TaxID: "987.654.321-11"},
		{Name: "Pedro Oliveira", TaxID: "456.789.123-22"},
		{Name: "Oficina XPTO Ltda", TaxID: "12.345.678/0001-99"},
		{Name: "Transportadora ABC", TaxID: "98.765.432/0001-88"},
	}
	clients := make([]*domain.Client, 0, len(clientSeed))
	for _, req := range clientSeed {
		c, err := reg.CreateClient(ctx, req)
		if err != nil {
			log.Fatal("seed client:", err)
		}
		clients = append(clients, c)
	}

	log.Println("Creating employees...")
	employeeSeed := []registry.CreateEmployeeRequest{
		{Name: "Pedro Mecânico", Role: "Mecânico"},
		{Name: "Ana Recepção", Role: "Atendimento"},
		{Name: "Fabio Elétrica", Role: "Eletricista automotivo"},
		{Name: "Mariana Gerente", Role: "Gerente de oficina"},
	}
	employees := make([]*domain.Employee, 0, len(employeeSeed))
	for _, req := range employeeSeed {
		e, err := reg.CreateEmployee(ctx, req)
		if err != nil {
			log.Fatal("seed employee:", err)
		}
		employees = append(employees, e)
	}

	log.Println("Creating catalog services...")
	serviceSeed := []registry.CreateServiceRequest{
		{Description: "Troca de óleo", StandardPrice: 120.00},
		{Description: "Alinhamento", StandardPrice: 150.00},
		{Description: "Balanceamento", StandardPrice: 100.00},
		{Description: "Revisão completa", StandardPrice: 300.00},
		{Description: "Troca de pastilha de freio", StandardPrice: 200.00},
		{Description: "Diagnóstico eletrônico", StandardPrice: 150.00},
	}
	services := make([]*domain.CatalogService, 0, len(serviceSeed))
	for _, req := range serviceSeed {
		s, err := reg.CreateService(ctx, req)
		if err != nil {
			log.Fatal("seed service:", err)
		}
		services = append(services, s)
	}

	log.Println("Creating parts...")
	partSeed := []registry.CreatePartRequest{
		{SKU: "OL-10W40", Description: "Óleo 10W40", Origin: "domestic", InitialStock: 50},
		{SKU: "OL-5W30", Description: "Óleo 5W30 sintético", Origin: "imported", InitialStock: 30},
		{SKU: "FILT-OLEO-1", Description: "Filtro de óleo padrão", Origin: "domestic", InitialStock: 40},
		{SKU: "PAST-FREIO-1", Description: "Pastilha de freio dianteira", Origin: "domestic", InitialStock: 35},
		{SKU: "BATE-12V", Description: "Bateria 12V 60Ah", Origin: "domestic", InitialStock: 10},
		{SKU: "PNEU-185", Description: "Pneu 185/65R15", Origin: "imported", InitialStock: 18},
		{SKU: "SENSOR-LAMBDA", Description: "Sensor lambda O2", Origin: "imported", InitialStock: 12},
	}
	parts := make([]*domain.Part, 0, len(partSeed))
	for _, req := range partSeed {
		p, err := reg.CreatePart(ctx, req)
		if err != nil {
			log.Fatal("seed part:", err)
		}
		parts = append(parts, p)
	}

	log.Println("Creating suppliers...")
	supplierSeed := []registry.CreateSupplierRequest{
		{Name: "Distribuidora Nacional de Peças", TaxID: "11.111.111/0001-11"},
		{Name: "Importadora Turbo Parts", TaxID: "22.222.222/0001-22"},
		{Name: "Bosch Brasil", TaxID: "33.333.333/0001-33"},
	}
	suppliers := make([]*domain.Supplier, 0, len(supplierSeed))
	for _, req := range supplierSeed {
		s, err := reg.CreateSupplier(ctx, req)
		if err != nil {
			log.Fatal("seed supplier:", err)
		}
		suppliers = append(suppliers, s)
	}
	for i, p := range parts {
		if err := reg.AttachSupplierPart(ctx, suppliers[i%len(suppliers)].ID, p.ID); err != nil {
			log.Fatal("seed supplier part:", err)
		}
	}

	log.Println("Creating vehicles...")
	vehicleSeed := []registry.CreateVehicleRequest{
		{Plate: "ABC-1234", Chassis: "9BWZZZ377VT004251", Odometer: 120000, Make: "VW", Model: "Gol", ClientID: clients[0].ID},
		{Plate: "DEF-5678", Chassis: "9C2JC4110VR000123", Odometer: 35000, Make: "Honda", Model: "CG 160", ClientID: clients[0].ID},
		{Plate: "XYZ-9999", Chassis: "9BD17164LB5321987", Odometer: 80000, Make: "Fiat", Model: "Strada", ClientID: clients[1].ID},
		{Plate: "GHI-2020", Chassis: "9BR53ZEC288021456", Odometer: 95000, Make: "Toyota", Model: "Corolla", ClientID: clients[2].ID},
		{Plate: "PQR-5050", Chassis: "9BGKS48U0KG334455", Odometer: 75000, Make: "Chevrolet", Model: "Onix", ClientID: clients[3].ID},
		{Plate: "EFG-1111", Chassis: "93ZC35A01E8431290", Odometer: 220000, Make: "Iveco", Model: "Daily", ClientID: clients[4].ID},
	}
	vehicles := make([]*domain.Vehicle, 0, len(vehicleSeed))
	for _, req := range vehicleSeed {
		v, err := reg.CreateVehicle(ctx, req)
		if err != nil {
			log.Fatal("seed vehicle:", err)
		}
		vehicles = append(vehicles, v)
	}

	log.Println("Creating service orders...")
	now := time.Now()
	for i := 0; i < 5; i++ {
		v := vehicles[i%len(vehicles)]
		o, err := ord.CreateOrder(ctx, orders.CreateOrderRequest{
			VehicleID:       v.ID,
			EmployeeID:      employees[i%len(employees)].ID,
			IntakeOdometer:  v.Odometer + int64(i*500),
			ReportedProblem: "Revisão geral e barulho na suspensão",
		})
		if err != nil {
			log.Fatal("seed order:", err)
		}

		if _, err := ord.AddServiceItem(ctx, o.ID, orders.AddServiceItemRequest{
			ServiceID: services[i%len(services)].ID,
			Quantity:  1,
			UnitPrice: 100.00 + float64(i*10),
		}); err != nil {
			log.Fatal("seed service item:", err)
		}

		part := parts[i%len(parts)]
		if _, err := ord.AddPartItem(ctx, o.ID, orders.AddPartItemRequest{
			PartID:    part.ID,
			Quantity:  (i % 3) + 1,
			UnitPrice: 50.00 + float64(i*5),
		}); err != nil {
			log.Fatal("seed part item:", err)
		}

		// Consume the installed part from stock against the same order.
		cost := 40.00 + float64(i*5)
		if _, _, err := inv.RecordMovement(ctx, inventory.RecordMovementRequest{
			PartID:   part.ID,
			Kind:     string(domain.MovementOutbound),
			Quantity: (i % 3) + 1,
			OrderID:  &o.ID,
			UnitCost: &cost,
			Source:   "Baixa por ordem de serviço",
		}); err != nil {
			log.Fatal("seed movement:", err)
		}

		if _, err := ord.AddPayment(ctx, o.ID, orders.AddPaymentRequest{
			Method: []string{"Dinheiro", "Cartão crédito", "Cartão débito"}[i%3],
			Amount: 150.00 + float64(i*50),
		}); err != nil {
			log.Fatal("seed payment:", err)
		}

		if i < 3 {
			if _, err := ord.AdvanceStatus(ctx, o.ID, domain.OrderInProgress); err != nil {
				log.Fatal("seed order status:", err)
			}
		}
		if i < 2 {
			if _, err := ord.AdvanceStatus(ctx, o.ID, domain.OrderClosed); err != nil {
				log.Fatal("seed order status:", err)
			}
		}
	}

	log.Println("Creating appointments...")
	for i := 0; i < 6; i++ {
		v := vehicles[i%len(vehicles)]
		a, err := sched.CreateAppointment(ctx, scheduling.CreateAppointmentRequest{
			ClientID:    v.ClientID,
			VehicleID:   v.ID,
			ServiceID:   services[i%len(services)].ID,
			ScheduledAt: now.AddDate(0, 0, i+1).Truncate(time.Hour).Add(10 * time.Hour),
		})
		if err != nil {
			log.Fatal("seed appointment:", err)
		}
		if i%2 == 0 {
			if _, err := sched.UpdateStatus(ctx, a.ID, domain.AppointmentConfirmed); err != nil {
				log.Fatal("seed appointment status:", err)
			}
		}
	}

	log.Println("Seed complete.")
}
