package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/orderdesk-backend/internal/data/models"
	"github.com/yungbote/orderdesk-backend/internal/data/repos"
	"github.com/yungbote/orderdesk-backend/internal/data/repos/testutil"
	"github.com/yungbote/orderdesk-backend/internal/domain/aggregates"
	"github.com/yungbote/orderdesk-backend/internal/domain/customer"
	"github.com/yungbote/orderdesk-backend/internal/domain/events"
)

type recordingHandler struct {
	seen []events.Event
}

func (h *recordingHandler) Handle(event events.Event) error {
	h.seen = append(h.seen, event)
	return nil
}

type failingHandler struct {
	err error
}

func (h failingHandler) Handle(events.Event) error {
	return h.err
}

func newCustomerHarness(t *testing.T) (CustomerService, *events.Dispatcher, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	dispatcher := events.NewDispatcher(log)
	svc := NewCustomerService(db, log, repos.NewCustomerRepo(db, log), dispatcher)
	return svc, dispatcher, db
}

func removeCustomer(t *testing.T, db *gorm.DB, id string) {
	t.Cleanup(func() {
		db.Where("id = ?", id).Delete(&models.Customer{})
	})
}

func mustServiceAddress(t *testing.T) customer.Address {
	t.Helper()
	addr, err := customer.NewAddress("Main Street", 100, "13330-250", "Springfield")
	if err != nil {
		t.Fatalf("customer.NewAddress: %v", err)
	}
	return addr
}

func TestCustomerService_CreateWithoutAddress(t *testing.T) {
	svc, dispatcher, db := newCustomerHarness(t)
	ctx := context.Background()

	spy := &recordingHandler{}
	dispatcher.Register(customer.EventCreated, spy)

	c, err := svc.Create(ctx, "John", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	removeCustomer(t, db, c.ID())

	if c.ID() == "" {
		t.Fatal("Create: empty id")
	}
	if c.Name() != "John" {
		t.Fatalf("Create: name want=John got=%q", c.Name())
	}
	if c.Active() || c.RewardPoints() != 0 || c.HasAddress() {
		t.Fatalf("Create: unexpected initial state %+v", c)
	}

	got, err := svc.Get(ctx, c.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Fatalf("Get: want %+v got %+v", c, got)
	}

	if len(spy.seen) != 1 {
		t.Fatalf("CustomerCreated notifications: want=1 got=%d", len(spy.seen))
	}
	payload, ok := spy.seen[0].Payload().(customer.CreatedPayload)
	if !ok {
		t.Fatalf("CustomerCreated payload type: %T", spy.seen[0].Payload())
	}
	if payload.CustomerID != c.ID() || payload.Name != "John" {
		t.Fatalf("CustomerCreated payload: %+v", payload)
	}
}

func TestCustomerService_CreateWithAddress(t *testing.T) {
	svc, _, db := newCustomerHarness(t)
	ctx := context.Background()
	addr := mustServiceAddress(t)

	c, err := svc.Create(ctx, "Jane", &addr)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	removeCustomer(t, db, c.ID())

	if !c.HasAddress() || !c.Address().Equal(addr) {
		t.Fatalf("Create: address not set: %+v", c)
	}

	got, err := svc.Get(ctx, c.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Address().Equal(addr) {
		t.Fatalf("Get: address want=%v got=%v", addr, got.Address())
	}
}

func TestCustomerService_CreateRejectsBlankName(t *testing.T) {
	svc, _, _ := newCustomerHarness(t)

	if _, err := svc.Create(context.Background(), "   ", nil); !aggregates.IsValidation(err) {
		t.Fatalf("Create blank name: expected validation error, got %v", err)
	}
}

func TestCustomerService_ActivationLifecycle(t *testing.T) {
	svc, _, db := newCustomerHarness(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, "John", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	removeCustomer(t, db, c.ID())

	// no address yet, activation must be refused
	if _, err := svc.Activate(ctx, c.ID()); !aggregates.IsInvalidState(err) {
		t.Fatalf("Activate without address: expected invalid state, got %v", err)
	}

	if _, err := svc.ChangeAddress(ctx, c.ID(), mustServiceAddress(t)); err != nil {
		t.Fatalf("ChangeAddress: %v", err)
	}
	activated, err := svc.Activate(ctx, c.ID())
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if !activated.Active() {
		t.Fatal("Activate: customer still inactive")
	}

	withPoints, err := svc.AddRewardPoints(ctx, c.ID(), 10)
	if err != nil {
		t.Fatalf("AddRewardPoints: %v", err)
	}
	if withPoints.RewardPoints() != 10 {
		t.Fatalf("AddRewardPoints: want=10 got=%d", withPoints.RewardPoints())
	}
	if _, err := svc.AddRewardPoints(ctx, c.ID(), -5); !aggregates.IsValidation(err) {
		t.Fatalf("AddRewardPoints negative: expected validation error, got %v", err)
	}

	deactivated, err := svc.Deactivate(ctx, c.ID())
	if err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if deactivated.Active() {
		t.Fatal("Deactivate: customer still active")
	}

	got, err := svc.Get(ctx, c.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Active() || got.RewardPoints() != 10 {
		t.Fatalf("Get after lifecycle: %+v", got)
	}
}

func TestCustomerService_ChangeAddressNotifies(t *testing.T) {
	svc, dispatcher, db := newCustomerHarness(t)
	ctx := context.Background()
	addr := mustServiceAddress(t)

	c, err := svc.Create(ctx, "John", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	removeCustomer(t, db, c.ID())

	spy := &recordingHandler{}
	dispatcher.Register(customer.EventAddressChanged, spy)

	if _, err := svc.ChangeAddress(ctx, c.ID(), addr); err != nil {
		t.Fatalf("ChangeAddress: %v", err)
	}
	if len(spy.seen) != 1 {
		t.Fatalf("CustomerAddressChanged notifications: want=1 got=%d", len(spy.seen))
	}
	payload, ok := spy.seen[0].Payload().(customer.AddressChangedPayload)
	if !ok {
		t.Fatalf("CustomerAddressChanged payload type: %T", spy.seen[0].Payload())
	}
	if payload.CustomerID != c.ID() || !payload.Address.Equal(addr) {
		t.Fatalf("CustomerAddressChanged payload: %+v", payload)
	}
}

func TestCustomerService_HandlerFailureKeepsWrite(t *testing.T) {
	svc, dispatcher, db := newCustomerHarness(t)
	ctx := context.Background()

	boom := errors.New("smtp down")
	dispatcher.Register(customer.EventCreated, failingHandler{err: boom})

	c, err := svc.Create(ctx, "John", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("Create: expected handler error, got %v", err)
	}
	if c == nil {
		t.Fatal("Create: customer not returned alongside handler error")
	}
	removeCustomer(t, db, c.ID())

	// the row is durable even though a handler failed
	if _, err := svc.Get(ctx, c.ID()); err != nil {
		t.Fatalf("Get after handler failure: %v", err)
	}
}

func TestCustomerService_GetMissing(t *testing.T) {
	svc, _, _ := newCustomerHarness(t)

	_, err := svc.Get(context.Background(), "cust-service-missing")
	if !aggregates.IsNotFound(err) {
		t.Fatalf("Get missing: expected not found, got %v", err)
	}
	if err.Error() != "Customer not found" {
		t.Fatalf("Get missing: message want=%q got=%q", "Customer not found", err.Error())
	}
}

func TestCustomerService_List(t *testing.T) {
	svc, _, db := newCustomerHarness(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "Alice", nil)
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	removeCustomer(t, db, first.ID())
	second, err := svc.Create(ctx, "Bob", nil)
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	removeCustomer(t, db, second.ID())

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := map[string]bool{}
	for _, c := range all {
		found[c.ID()] = true
	}
	if !found[first.ID()] || !found[second.ID()] {
		t.Fatalf("List: created customers missing from %d results", len(all))
	}
}
