package ordering_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-orders/internal/application/ordering"
	"github.com/jhoicas/cafe-orders/internal/domain"
	"github.com/jhoicas/cafe-orders/internal/domain/entity"
)

func cartLines(pairs ...string) []ordering.CartLine {
	var lines []ordering.CartLine
	for i := 0; i < len(pairs); i += 2 {
		lines = append(lines, ordering.CartLine{Name: pairs[i], Price: dec(pairs[i+1])})
	}
	return lines
}

// TestSubmit_Escenario carrito [Latte 3.50, Bagel 2.25] -> pedido con total
// 5.75 y dos líneas en "order processing".
func TestSubmit_Escenario(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := ordering.NewSubmitOrderUseCase(&fakeTxRunner{repo: repo})

	orderID, err := uc.Submit(context.Background(), "alice", cartLines("Latte", "3.50", "Bagel", "2.25"))
	require.NoError(t, err)
	require.NotZero(t, orderID)

	order, err := repo.GetByID(orderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "alice", order.Login)
	assert.False(t, order.Paid)
	assert.True(t, order.Total.Equal(dec("5.75")), "total = %s", order.Total)

	items, err := repo.GetLineItems(orderID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, entity.StatusProcessing, it.Status)
		assert.Equal(t, entity.DefaultItemComments, it.Comments)
	}
}

// TestSubmit_CarritoVacio enviar sin líneas nunca crea filas.
func TestSubmit_CarritoVacio(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := ordering.NewSubmitOrderUseCase(&fakeTxRunner{repo: repo})

	_, err := uc.Submit(context.Background(), "alice", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, repo.orders)
	assert.Empty(t, repo.items)
}

// TestSubmit_RollbackSinFilasParciales si falla el insert de una línea, la
// transacción se revierte: ni cabecera ni líneas quedan visibles.
func TestSubmit_RollbackSinFilasParciales(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.failInsertLineItem = true
	uc := ordering.NewSubmitOrderUseCase(&fakeTxRunner{repo: repo})

	_, err := uc.Submit(context.Background(), "alice", cartLines("Latte", "3.50"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, repo.orders, "la cabecera debe revertirse")
	assert.Empty(t, repo.items, "las líneas deben revertirse")
}

// TestSubmit_ConcurrentesIdsDistintos envíos concurrentes de dos usuarios
// producen ids distintos con totales correctos: el id sale del propio insert,
// nunca de una consulta posterior.
func TestSubmit_ConcurrentesIdsDistintos(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := ordering.NewSubmitOrderUseCase(&fakeTxRunner{repo: repo})

	const n = 20
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			login := "alice"
			if i%2 == 1 {
				login = "bob"
			}
			id, err := uc.Submit(context.Background(), login, cartLines("Latte", "3.50"))
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id], "orderid repetido: %d", id)
		seen[id] = true
		order, err := repo.GetByID(id)
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.True(t, order.Total.Equal(dec("3.50")))
	}
}
