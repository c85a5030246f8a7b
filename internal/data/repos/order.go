package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/orderdesk-backend/internal/data/models"
	"github.com/yungbote/orderdesk-backend/internal/domain/aggregates"
	"github.com/yungbote/orderdesk-backend/internal/domain/order"
	"github.com/yungbote/orderdesk-backend/internal/platform/dbctx"
	"github.com/yungbote/orderdesk-backend/internal/platform/logger"
)

// OrderRepo owns the cascade between the orders row and its order_items
// rows. Create and Update touch multiple rows, so when the caller did not
// supply a transaction the repo opens one around the whole operation.
type OrderRepo interface {
	Create(dbc dbctx.Context, o *order.Order) error
	Update(dbc dbctx.Context, o *order.Order) error
	GetByID(dbc dbctx.Context, id string) (*order.Order, error)
	GetAll(dbc dbctx.Context) ([]*order.Order, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{db: db, log: repoLog}
}

func (r *orderRepo) Create(dbc dbctx.Context, o *order.Order) error {
	if dbc.Tx != nil {
		return r.createRows(dbc, o)
	}
	return r.db.WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		return r.createRows(dbctx.WithTx(dbc.Ctx, tx), o)
	})
}

func (r *orderRepo) createRows(dbc dbctx.Context, o *order.Order) error {
	row, itemRows := orderToRows(o)
	if err := dbc.Tx.WithContext(dbc.Ctx).Create(&row).Error; err != nil {
		return mapError("orders.create", "Order", err)
	}
	if err := dbc.Tx.WithContext(dbc.Ctx).Create(&itemRows).Error; err != nil {
		return mapError("orders.create_items", "Order", err)
	}
	return nil
}

// Update replaces the stored aggregate wholesale: the parent row's
// customer_id and total are rewritten, every existing child row for the
// order id is deleted, and the current in-memory item set is re-inserted.
// Replacing beats diffing here; after the call the rows exactly mirror
// the aggregate.
func (r *orderRepo) Update(dbc dbctx.Context, o *order.Order) error {
	if dbc.Tx != nil {
		return r.updateRows(dbc, o)
	}
	return r.db.WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		return r.updateRows(dbctx.WithTx(dbc.Ctx, tx), o)
	})
}

func (r *orderRepo) updateRows(dbc dbctx.Context, o *order.Order) error {
	txx := dbc.Tx
	res := txx.WithContext(dbc.Ctx).
		Model(&models.Order{}).
		Where("id = ?", o.ID()).
		Updates(map[string]any{
			"customer_id": o.CustomerID(),
			"total":       o.Total(),
		})
	if res.Error != nil {
		return mapError("orders.update", "Order", res.Error)
	}
	if res.RowsAffected == 0 {
		return aggregates.NewNotFound("Order")
	}
	if err := txx.WithContext(dbc.Ctx).
		Where("order_id = ?", o.ID()).
		Delete(&models.OrderItem{}).Error; err != nil {
		return mapError("orders.update_delete_items", "Order", err)
	}
	_, itemRows := orderToRows(o)
	if err := txx.WithContext(dbc.Ctx).Create(&itemRows).Error; err != nil {
		return mapError("orders.update_insert_items", "Order", err)
	}
	return nil
}

func (r *orderRepo) GetByID(dbc dbctx.Context, id string) (*order.Order, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var row models.Order
	if err := txx.WithContext(dbc.Ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, mapError("orders.get_by_id", "Order", err)
	}
	var itemRows []models.OrderItem
	if err := txx.WithContext(dbc.Ctx).
		Where("order_id = ?", id).
		Order("position ASC").
		Find(&itemRows).Error; err != nil {
		return nil, mapError("orders.get_by_id_items", "Order", err)
	}
	o, err := orderFromRows(row, itemRows)
	if err != nil {
		return nil, aggregates.NewPersistence("orders.get_by_id", err)
	}
	return o, nil
}

func (r *orderRepo) GetAll(dbc dbctx.Context) ([]*order.Order, error) {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	var rows []models.Order
	if err := txx.WithContext(dbc.Ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, mapError("orders.get_all", "Order", err)
	}
	if len(rows) == 0 {
		return []*order.Order{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	var itemRows []models.OrderItem
	if err := txx.WithContext(dbc.Ctx).
		Where("order_id IN ?", ids).
		Order("order_id ASC, position ASC").
		Find(&itemRows).Error; err != nil {
		return nil, mapError("orders.get_all_items", "Order", err)
	}

	grouped := make(map[string][]models.OrderItem, len(rows))
	for _, ir := range itemRows {
		grouped[ir.OrderID] = append(grouped[ir.OrderID], ir)
	}

	out := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := orderFromRows(row, grouped[row.ID])
		if err != nil {
			return nil, aggregates.NewPersistence("orders.get_all", err)
		}
		out = append(out, o)
	}
	return out, nil
}

func orderToRows(o *order.Order) (models.Order, []models.OrderItem) {
	items := o.Items()
	itemRows := make([]models.OrderItem, 0, len(items))
	for i, it := range items {
		itemRows = append(itemRows, models.OrderItem{
			ID:        it.ID(),
			OrderID:   o.ID(),
			ProductID: it.ProductID(),
			Name:      it.Name(),
			Price:     it.Price(),
			Quantity:  it.Quantity(),
			Position:  i,
		})
	}
	row := models.Order{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Total:      o.Total(),
	}
	return row, itemRows
}

// orderFromRows rebuilds the aggregate from one parent row and its child
// rows, which arrive sorted by position. Rows that fail reconstruction
// mean the stored data no longer satisfies the aggregate's invariants.
func orderFromRows(row models.Order, itemRows []models.OrderItem) (*order.Order, error) {
	items := make([]order.Item, 0, len(itemRows))
	for _, ir := range itemRows {
		it, err := order.NewItem(ir.ID, ir.ProductID, ir.Name, ir.Price, ir.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return order.Restore(row.ID, row.CustomerID, items)
}
