package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/orderdesk-backend/internal/data/models"
	"github.com/yungbote/orderdesk-backend/internal/domain/aggregates"
	"github.com/yungbote/orderdesk-backend/internal/domain/customer"
	"github.com/yungbote/orderdesk-backend/internal/platform/dbctx"
	"github.com/yungbote/orderdesk-backend/internal/platform/logger"
)

type CustomerRepo interface {
	Create(dbc dbctx.Context, c *customer.Customer) error
	Update(dbc dbctx.Context, c *customer.Customer) error
	GetByID(dbc dbctx.Context, id string) (*customer.Customer, error)
	GetAll(dbc dbctx.Context) ([]*customer.Customer, error)
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	repoLog := baseLog.With("repo", "CustomerRepo")
	return &customerRepo{db: db, log: repoLog}
}

func (r *customerRepo) Create(dbc dbctx.Context, c *customer.Customer) error {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	row := customerToRow(c)
	if err := txx.WithContext(dbc.Ctx).Create(&row).Error; err != nil {
		return mapError("customers.create", "Customer", err)
	}
	return nil
}

func (r *customerRepo) Update(dbc dbctx.Context, c *customer.Customer) error {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	row := customerToRow(c)
	res := txx.WithContext(dbc.Ctx).
		Model(&models.Customer{}).
		Where("id = ?", c.ID()).
		Updates(map[string]any{
			"name":          row.Name,
			"active":        row.Active,
			"reward_points": row.RewardPoints,
			"street":        row.Street,
			"number":        row.Number,
			"zipcode":       row.Zipcode,
			"city":          row.City,
		})
	if res.Error != nil {
		return mapError("customers.update", "Customer", res.Error)
	}
	if res.RowsAffected == 0 {
		return aggregates.NewNotFound("Customer")
	}
	return nil
}

func (r *customerRepo) GetByID(dbc dbctx.Context, id string) (*customer.Customer, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var row models.Customer
	if err := txx.WithContext(dbc.Ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, mapError("customers.get_by_id", "Customer", err)
	}
	return customerFromRow(row), nil
}

func (r *customerRepo) GetAll(dbc dbctx.Context) ([]*customer.Customer, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var rows []models.Customer
	if err := txx.WithContext(dbc.Ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, mapError("customers.get_all", "Customer", err)
	}
	out := make([]*customer.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, customerFromRow(row))
	}
	return out, nil
}

func customerToRow(c *customer.Customer) models.Customer {
	addr := c.Address()
	return models.Customer{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.Active(),
		RewardPoints: c.RewardPoints(),
		Street:       addr.Street(),
		Number:       addr.Number(),
		Zipcode:      addr.Zip(),
		City:         addr.City(),
	}
}

func customerFromRow(row models.Customer) *customer.Customer {
	addr := customer.RestoreAddress(row.Street, row.Number, row.Zipcode, row.City)
	return customer.Restore(row.ID, row.Name, addr, row.Active, row.RewardPoints)
}
