package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/orderdesk-backend/internal/data/repos"
	"github.com/yungbote/orderdesk-backend/internal/domain/events"
	"github.com/yungbote/orderdesk-backend/internal/domain/product"
	"github.com/yungbote/orderdesk-backend/internal/platform/dbctx"
	"github.com/yungbote/orderdesk-backend/internal/platform/logger"
)

type ProductService interface {
	Create(ctx context.Context, name string, price float64) (*product.Product, error)
	ChangePrice(ctx context.Context, productID string, price float64) (*product.Product, error)
	Get(ctx context.Context, productID string) (*product.Product, error)
	List(ctx context.Context) ([]*product.Product, error)
}

type productService struct {
	db         *gorm.DB
	log        *logger.Logger
	products   repos.ProductRepo
	dispatcher *events.Dispatcher
}

func NewProductService(db *gorm.DB, log *logger.Logger, products repos.ProductRepo, dispatcher *events.Dispatcher) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{
		db:         db,
		log:        serviceLog,
		products:   products,
		dispatcher: dispatcher,
	}
}

func (ps *productService) Create(ctx context.Context, name string, price float64) (*product.Product, error) {
	p, err := product.New(uuid.NewString(), name, price)
	if err != nil {
		return nil, err
	}

	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		return ps.products.Create(dbc, p)
	}); err != nil {
		ps.log.Warn("Create transaction error", "error", err)
		return nil, err
	}

	if err := ps.dispatcher.Notify(product.NewCreatedEvent(p)); err != nil {
		ps.log.Error("ProductCreated handlers failed", "product_id", p.ID(), "error", err)
		return p, err
	}
	return p, nil
}

func (ps *productService) ChangePrice(ctx context.Context, productID string, price float64) (*product.Product, error) {
	var out *product.Product
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		p, err := ps.products.GetByID(dbc, productID)
		if err != nil {
			return err
		}
		if err := p.ChangePrice(price); err != nil {
			return err
		}
		if err := ps.products.Update(dbc, p); err != nil {
			return err
		}
		out = p
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (ps *productService) Get(ctx context.Context, productID string) (*product.Product, error) {
	return ps.products.GetByID(dbctx.New(ctx), productID)
}

func (ps *productService) List(ctx context.Context) ([]*product.Product, error) {
	return ps.products.GetAll(dbctx.New(ctx))
}
