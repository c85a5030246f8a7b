package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/orderdesk-backend/internal/data/repos"
	"github.com/yungbote/orderdesk-backend/internal/domain/customer"
	"github.com/yungbote/orderdesk-backend/internal/domain/events"
	"github.com/yungbote/orderdesk-backend/internal/platform/dbctx"
	"github.com/yungbote/orderdesk-backend/internal/platform/logger"
)

type CustomerService interface {
	Create(ctx context.Context, name string, address *customer.Address) (*customer.Customer, error)
	ChangeAddress(ctx context.Context, customerID string, address customer.Address) (*customer.Customer, error)
	Activate(ctx context.Context, customerID string) (*customer.Customer, error)
	Deactivate(ctx context.Context, customerID string) (*customer.Customer, error)
	AddRewardPoints(ctx context.Context, customerID string, points int) (*customer.Customer, error)
	Get(ctx context.Context, customerID string) (*customer.Customer, error)
	List(ctx context.Context) ([]*customer.Customer, error)
}

type customerService struct {
	db         *gorm.DB
	log        *logger.Logger
	customers  repos.CustomerRepo
	dispatcher *events.Dispatcher
}

func NewCustomerService(db *gorm.DB, log *logger.Logger, customers repos.CustomerRepo, dispatcher *events.Dispatcher) CustomerService {
	serviceLog := log.With("service", "CustomerService")
	return &customerService{
		db:         db,
		log:        serviceLog,
		customers:  customers,
		dispatcher: dispatcher,
	}
}

// Create mints the customer id and notifies CustomerCreated once the row is
// durable. On handler failure the created customer is returned together with
// the error; the write stays committed.
func (cs *customerService) Create(ctx context.Context, name string, address *customer.Address) (*customer.Customer, error) {
	c, err := customer.New(uuid.NewString(), name)
	if err != nil {
		return nil, err
	}
	if address != nil {
		if err := c.ChangeAddress(*address); err != nil {
			return nil, err
		}
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		return cs.customers.Create(dbc, c)
	}); err != nil {
		cs.log.Warn("Create transaction error", "error", err)
		return nil, err
	}

	if err := cs.dispatcher.Notify(customer.NewCreatedEvent(c)); err != nil {
		cs.log.Error("CustomerCreated handlers failed", "customer_id", c.ID(), "error", err)
		return c, err
	}
	return c, nil
}

func (cs *customerService) ChangeAddress(ctx context.Context, customerID string, address customer.Address) (*customer.Customer, error) {
	var out *customer.Customer
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		c, err := cs.customers.GetByID(dbc, customerID)
		if err != nil {
			return err
		}
		if err := c.ChangeAddress(address); err != nil {
			return err
		}
		if err := cs.customers.Update(dbc, c); err != nil {
			return err
		}
		out = c
		return nil
	}); err != nil {
		return nil, err
	}

	if err := cs.dispatcher.Notify(customer.NewAddressChangedEvent(out)); err != nil {
		cs.log.Error("CustomerAddressChanged handlers failed", "customer_id", out.ID(), "error", err)
		return out, err
	}
	return out, nil
}

func (cs *customerService) Activate(ctx context.Context, customerID string) (*customer.Customer, error) {
	var out *customer.Customer
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		c, err := cs.customers.GetByID(dbc, customerID)
		if err != nil {
			return err
		}
		if err := c.Activate(); err != nil {
			return err
		}
		if err := cs.customers.Update(dbc, c); err != nil {
			return err
		}
		out = c
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (cs *customerService) Deactivate(ctx context.Context, customerID string) (*customer.Customer, error) {
	var out *customer.Customer
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		c, err := cs.customers.GetByID(dbc, customerID)
		if err != nil {
			return err
		}
		c.Deactivate()
		if err := cs.customers.Update(dbc, c); err != nil {
			return err
		}
		out = c
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (cs *customerService) AddRewardPoints(ctx context.Context, customerID string, points int) (*customer.Customer, error) {
	var out *customer.Customer
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		c, err := cs.customers.GetByID(dbc, customerID)
		if err != nil {
			return err
		}
		if err := c.AddRewardPoints(points); err != nil {
			return err
		}
		if err := cs.customers.Update(dbc, c); err != nil {
			return err
		}
		out = c
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (cs *customerService) Get(ctx context.Context, customerID string) (*customer.Customer, error) {
	return cs.customers.GetByID(dbctx.New(ctx), customerID)
}

func (cs *customerService) List(ctx context.Context) ([]*customer.Customer, error) {
	return cs.customers.GetAll(dbctx.New(ctx))
}
