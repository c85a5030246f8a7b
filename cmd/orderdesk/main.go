package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/orderdesk-backend/internal/data/db"
	"github.com/yungbote/orderdesk-backend/internal/data/repos"
	"github.com/yungbote/orderdesk-backend/internal/domain"
	"github.com/yungbote/orderdesk-backend/internal/domain/customer"
	"github.com/yungbote/orderdesk-backend/internal/domain/events"
	"github.com/yungbote/orderdesk-backend/internal/domain/product"
	"github.com/yungbote/orderdesk-backend/internal/platform/envutil"
	"github.com/yungbote/orderdesk-backend/internal/platform/logger"
	"github.com/yungbote/orderdesk-backend/internal/services"
)

func main() {
	// Logger
	logMode := envutil.String("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	defer postgresService.Close()
	thePG := postgresService.DB()
	if err := db.AutoMigrateAll(thePG); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}

	// Repos
	log.Info("Setting up repos from main...")
	customerRepo := repos.NewCustomerRepo(thePG, log)
	productRepo := repos.NewProductRepo(thePG, log)
	orderRepo := repos.NewOrderRepo(thePG, log)

	// Event dispatcher
	log.Info("Setting up event dispatcher from main...")
	dispatcher := events.NewDispatcher(log)
	dispatcher.Register(domain.EventCustomerCreated, customer.NewLogWhenCreatedHandler(log))
	dispatcher.Register(domain.EventCustomerCreated, customer.NewSendWelcomeWhenCreatedHandler(log))
	dispatcher.Register(domain.EventCustomerAddressChanged, customer.NewLogWhenAddressChangedHandler(log))
	dispatcher.Register(domain.EventProductCreated, product.NewSendEmailWhenCreatedHandler(log))

	// Services
	log.Info("Setting up services from main...")
	customerService := services.NewCustomerService(thePG, log, customerRepo, dispatcher)
	productService := services.NewProductService(thePG, log, productRepo, dispatcher)
	orderService := services.NewOrderService(thePG, log, orderRepo, customerRepo, productRepo)

	log.Info("orderdesk ready")

	if envutil.Bool("ORDERDESK_SEED_DEMO", false) {
		if err := runDemo(context.Background(), log, customerService, productService, orderService); err != nil {
			log.Error("Demo flow failed", "error", err)
			os.Exit(1)
		}
	}
}

// runDemo walks one order through its lifecycle so a fresh database has
// something to look at.
func runDemo(
	ctx context.Context,
	log *logger.Logger,
	customers services.CustomerService,
	products services.ProductService,
	orders services.OrderService,
) error {
	addr, err := customer.NewAddress("Main Street", 100, "13330-250", "Springfield")
	if err != nil {
		return err
	}
	c, err := customers.Create(ctx, "John Doe", &addr)
	if err != nil {
		return err
	}
	if _, err := customers.Activate(ctx, c.ID()); err != nil {
		return err
	}

	keyboard, err := products.Create(ctx, "Keyboard", 12)
	if err != nil {
		return err
	}
	monitor, err := products.Create(ctx, "Monitor", 18)
	if err != nil {
		return err
	}

	o, err := orders.Place(ctx, c.ID(), []services.OrderLine{{ProductID: keyboard.ID(), Quantity: 2}})
	if err != nil {
		return err
	}
	if _, err := orders.AddItem(ctx, o.ID(), monitor.ID(), 5); err != nil {
		return err
	}

	got, err := orders.Get(ctx, o.ID())
	if err != nil {
		return err
	}
	log.Info("Demo order placed",
		"order_id", got.ID(),
		"customer_id", got.CustomerID(),
		"items", len(got.Items()),
		"total", got.Total(),
	)
	return nil
}
