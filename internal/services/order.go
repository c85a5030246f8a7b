package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/orderdesk-backend/internal/data/repos"
	"github.com/yungbote/orderdesk-backend/internal/domain/order"
	"github.com/yungbote/orderdesk-backend/internal/platform/dbctx"
	"github.com/yungbote/orderdesk-backend/internal/platform/logger"
)

// OrderLine is the caller's view of one requested item: which product and
// how many. Name and price are snapshotted from the catalog at placement.
type OrderLine struct {
	ProductID string
	Quantity  int
}

type OrderService interface {
	Place(ctx context.Context, customerID string, lines []OrderLine) (*order.Order, error)
	AddItem(ctx context.Context, orderID, productID string, quantity int) (*order.Order, error)
	Get(ctx context.Context, orderID string) (*order.Order, error)
	List(ctx context.Context) ([]*order.Order, error)
}

type orderService struct {
	db        *gorm.DB
	log       *logger.Logger
	orders    repos.OrderRepo
	customers repos.CustomerRepo
	products  repos.ProductRepo
}

func NewOrderService(db *gorm.DB, log *logger.Logger, orders repos.OrderRepo, customers repos.CustomerRepo, products repos.ProductRepo) OrderService {
	serviceLog := log.With("service", "OrderService")
	return &orderService{
		db:        db,
		log:       serviceLog,
		orders:    orders,
		customers: customers,
		products:  products,
	}
}

func (os *orderService) Place(ctx context.Context, customerID string, lines []OrderLine) (*order.Order, error) {
	var out *order.Order
	if err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		c, err := os.customers.GetByID(dbc, customerID)
		if err != nil {
			return err
		}
		items := make([]order.Item, 0, len(lines))
		for _, line := range lines {
			p, err := os.products.GetByID(dbc, line.ProductID)
			if err != nil {
				return err
			}
			it, err := order.NewItem(uuid.NewString(), p.ID(), p.Name(), p.Price(), line.Quantity)
			if err != nil {
				return err
			}
			items = append(items, it)
		}
		o, err := order.New(uuid.NewString(), c.ID(), items)
		if err != nil {
			return err
		}
		if err := os.orders.Create(dbc, o); err != nil {
			return err
		}
		out = o
		return nil
	}); err != nil {
		os.log.Warn("Place transaction error", "error", err)
		return nil, err
	}
	return out, nil
}

func (os *orderService) AddItem(ctx context.Context, orderID, productID string, quantity int) (*order.Order, error) {
	var out *order.Order
	if err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		o, err := os.orders.GetByID(dbc, orderID)
		if err != nil {
			return err
		}
		p, err := os.products.GetByID(dbc, productID)
		if err != nil {
			return err
		}
		it, err := order.NewItem(uuid.NewString(), p.ID(), p.Name(), p.Price(), quantity)
		if err != nil {
			return err
		}
		o.AddItem(it)
		if err := os.orders.Update(dbc, o); err != nil {
			return err
		}
		out = o
		return nil
	}); err != nil {
		os.log.Warn("AddItem transaction error", "error", err)
		return nil, err
	}
	return out, nil
}

func (os *orderService) Get(ctx context.Context, orderID string) (*order.Order, error) {
	return os.orders.GetByID(dbctx.New(ctx), orderID)
}

func (os *orderService) List(ctx context.Context) ([]*order.Order, error) {
	return os.orders.GetAll(dbctx.New(ctx))
}
