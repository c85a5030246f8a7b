package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/orderdesk-backend/internal/data/models"
)

// Seed helpers write rows directly so repository tests do not depend on
// the code under test for their fixtures.

func SeedCustomer(tb testing.TB, ctx context.Context, tx *gorm.DB, id, name string) *models.Customer {
	tb.Helper()
	c := &models.Customer{
		ID:           id,
		Name:         name,
		Active:       false,
		RewardPoints: 0,
		Street:       "Main Street",
		Number:       100,
		Zipcode:      "13330-250",
		City:         "Springfield",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, id, name string, price float64) *models.Product {
	tb.Helper()
	p := &models.Product{
		ID:    id,
		Name:  name,
		Price: price,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}
