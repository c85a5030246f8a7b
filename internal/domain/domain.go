package domain

import (
	"github.com/yungbote/orderdesk-backend/internal/domain/customer"
	"github.com/yungbote/orderdesk-backend/internal/domain/order"
	"github.com/yungbote/orderdesk-backend/internal/domain/product"
)

const (
	EventCustomerCreated        = customer.EventCreated
	EventCustomerAddressChanged = customer.EventAddressChanged
	EventProductCreated         = product.EventCreated
)

type Customer = customer.Customer
type Address = customer.Address
type Product = product.Product
type Order = order.Order
type OrderItem = order.Item
