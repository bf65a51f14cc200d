package ordering_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-orders/internal/domain/entity"
	"github.com/jhoicas/cafe-orders/internal/domain/pricing"
	"github.com/jhoicas/cafe-orders/internal/domain/repository"
)

var errStore = errors.New("store caído")

// fakeOrderRepo repositorio de pedidos en memoria para los tests de casos de
// uso. Protegido con mutex: el test de envíos concurrentes lo comparte entre
// goroutines.
type fakeOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]*entity.Order
	items  map[int64][]*entity.ItemStatus

	failInsertLineItem bool // fuerza fallo al insertar líneas (test de rollback)
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[int64]*entity.Order),
		items:  make(map[int64][]*entity.ItemStatus),
	}
}

func (f *fakeOrderRepo) InsertOrder(order *entity.Order) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	o := *order
	o.OrderID = f.nextID
	f.orders[o.OrderID] = &o
	return o.OrderID, nil
}

func (f *fakeOrderRepo) InsertLineItem(item *entity.ItemStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsertLineItem {
		return errStore
	}
	it := *item
	f.items[it.OrderID] = append(f.items[it.OrderID], &it)
	return nil
}

func (f *fakeOrderRepo) GetByID(orderID int64) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) GetLineItems(orderID int64) ([]*entity.ItemStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ItemStatus
	for _, it := range f.items[orderID] {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOrderRepo) AdjustTotal(orderID int64, delta decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return errStore
	}
	o.Total = pricing.Round(o.Total.Add(delta))
	return nil
}

func (f *fakeOrderRepo) SwapLineItem(orderID int64, oldName, newName string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	found := false
	for _, it := range f.items[orderID] {
		if it.ItemName == oldName {
			it.ItemName = newName
			it.LastUpdated = time.Now()
			found = true
		}
	}
	return found, nil
}

func (f *fakeOrderRepo) DeleteLineItem(orderID int64, itemName string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []*entity.ItemStatus
	found := false
	for _, it := range f.items[orderID] {
		if it.ItemName == itemName {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	f.items[orderID] = kept
	return found, nil
}

func (f *fakeOrderRepo) DeleteOrder(orderID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.orders, orderID)
	delete(f.items, orderID)
	return nil
}

func (f *fakeOrderRepo) UpdateLineItemStatus(orderID int64, itemName, status string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	found := false
	for _, it := range f.items[orderID] {
		if it.ItemName == itemName {
			it.Status = status
			it.LastUpdated = time.Now()
			found = true
		}
	}
	return found, nil
}

func (f *fakeOrderRepo) SetPaid(orderID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return false, nil
	}
	o.Paid = true
	return true, nil
}

func (f *fakeOrderRepo) ListRecentByOwner(login string, limit int) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Order
	for id := f.nextID; id > 0 && len(out) < limit; id-- {
		o, ok := f.orders[id]
		if ok && o.Login == login && !o.Paid {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListUnpaidSince(since time.Time) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Order
	for id := f.nextID; id > 0; id-- {
		o, ok := f.orders[id]
		if ok && !o.Paid && !o.ReceivedAt.Before(since) {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

// snapshot / restore simulan el rollback transaccional del runner.
func (f *fakeOrderRepo) snapshot() (map[int64]*entity.Order, map[int64][]*entity.ItemStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	orders := make(map[int64]*entity.Order, len(f.orders))
	for id, o := range f.orders {
		cp := *o
		orders[id] = &cp
	}
	items := make(map[int64][]*entity.ItemStatus, len(f.items))
	for id, list := range f.items {
		cps := make([]*entity.ItemStatus, 0, len(list))
		for _, it := range list {
			cp := *it
			cps = append(cps, &cp)
		}
		items[id] = cps
	}
	return orders, items
}

func (f *fakeOrderRepo) restore(orders map[int64]*entity.Order, items map[int64][]*entity.ItemStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = orders
	f.items = items
}

// fakeTxRunner ejecuta fn contra el repo en memoria. Si fn falla, restaura el
// estado previo: mismas garantías observables que la transacción real.
type fakeTxRunner struct {
	repo *fakeOrderRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(orders repository.OrderRepository) error) error {
	orders, items := r.repo.snapshot()
	if err := fn(r.repo); err != nil {
		r.repo.restore(orders, items)
		return err
	}
	return nil
}

// fakeMenuRepo catálogo fijo en memoria.
type fakeMenuRepo struct {
	items []*entity.MenuItem
}

func newFakeMenu(pairs ...any) *fakeMenuRepo {
	m := &fakeMenuRepo{}
	for i := 0; i < len(pairs); i += 2 {
		m.items = append(m.items, &entity.MenuItem{
			Name:  pairs[i].(string),
			Type:  "Drinks",
			Price: decimal.RequireFromString(pairs[i+1].(string)),
		})
	}
	return m
}

func (m *fakeMenuRepo) ListItems() ([]*entity.MenuItem, error) { return m.items, nil }

func (m *fakeMenuRepo) ListTypes() ([]string, error) { return []string{"Drinks"}, nil }

func (m *fakeMenuRepo) ItemsOfType(string) ([]*entity.MenuItem, error) { return m.items, nil }

func (m *fakeMenuRepo) PriceOf(name string) (decimal.Decimal, bool, error) {
	for _, it := range m.items {
		if it.Name == name {
			return it.Price, true, nil
		}
	}
	return decimal.Zero, false, nil
}
