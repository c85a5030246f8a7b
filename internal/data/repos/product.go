package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/orderdesk-backend/internal/data/models"
	"github.com/yungbote/orderdesk-backend/internal/domain/aggregates"
	"github.com/yungbote/orderdesk-backend/internal/domain/product"
	"github.com/yungbote/orderdesk-backend/internal/platform/dbctx"
	"github.com/yungbote/orderdesk-backend/internal/platform/logger"
)

type ProductRepo interface {
	Create(dbc dbctx.Context, p *product.Product) error
	Update(dbc dbctx.Context, p *product.Product) error
	GetByID(dbc dbctx.Context, id string) (*product.Product, error)
	GetAll(dbc dbctx.Context) ([]*product.Product, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (r *productRepo) Create(dbc dbctx.Context, p *product.Product) error {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	row := productToRow(p)
	if err := txx.WithContext(dbc.Ctx).Create(&row).Error; err != nil {
		return mapError("products.create", "Product", err)
	}
	return nil
}

func (r *productRepo) Update(dbc dbctx.Context, p *product.Product) error {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	res := txx.WithContext(dbc.Ctx).
		Model(&models.Product{}).
		Where("id = ?", p.ID()).
		Updates(map[string]any{
			"name":  p.Name(),
			"price": p.Price(),
		})
	if res.Error != nil {
		return mapError("products.update", "Product", res.Error)
	}
	if res.RowsAffected == 0 {
		return aggregates.NewNotFound("Product")
	}
	return nil
}

func (r *productRepo) GetByID(dbc dbctx.Context, id string) (*product.Product, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var row models.Product
	if err := txx.WithContext(dbc.Ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, mapError("products.get_by_id", "Product", err)
	}
	return product.Restore(row.ID, row.Name, row.Price), nil
}

func (r *productRepo) GetAll(dbc dbctx.Context) ([]*product.Product, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var rows []models.Product
	if err := txx.WithContext(dbc.Ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, mapError("products.get_all", "Product", err)
	}
	out := make([]*product.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, product.Restore(row.ID, row.Name, row.Price))
	}
	return out, nil
}

func productToRow(p *product.Product) models.Product {
	return models.Product{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}
