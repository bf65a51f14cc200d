package ordering_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-orders/internal/application/ordering"
	"github.com/jhoicas/cafe-orders/internal/domain"
)

// TestHistoryForOwner solo los pedidos sin pagar del dueño, del más reciente
// al más antiguo, hasta 5.
func TestHistoryForOwner(t *testing.T) {
	repo := newFakeOrderRepo()
	var ids []int64
	for i := 0; i < 7; i++ {
		ids = append(ids, seedOrder(t, repo, "alice", "Latte", "3.50"))
	}
	seedOrder(t, repo, "bob", "Bagel", "2.25")
	// El más antiguo de alice ya fue pagado: queda fuera del historial.
	ok, err := repo.SetPaid(ids[0])
	require.NoError(t, err)
	require.True(t, ok)

	h := ordering.NewOrderHistory(repo)
	views, err := h.ForOwner("alice")
	require.NoError(t, err)
	require.Len(t, views, 5)
	for i, v := range views {
		assert.Equal(t, "alice", v.Login)
		assert.False(t, v.Paid)
		require.Len(t, v.Items, 1)
		assert.Equal(t, "Latte", v.Items[0].Name)
		if i > 0 {
			assert.Greater(t, views[i-1].OrderID, v.OrderID, "orden descendente por id")
		}
	}
}

func TestHistoryForOwner_SinPedidos(t *testing.T) {
	h := ordering.NewOrderHistory(newFakeOrderRepo())

	views, err := h.ForOwner("alice")
	require.NoError(t, err)
	assert.Empty(t, views)
}

// TestHistoryCurrent la vista del personal cubre las últimas 24 horas y todos
// los usuarios; lo pagado y lo viejo quedan fuera.
func TestHistoryCurrent(t *testing.T) {
	repo := newFakeOrderRepo()
	fresh := seedOrder(t, repo, "alice", "Latte", "3.50")
	stale := seedOrder(t, repo, "bob", "Bagel", "2.25")
	paid := seedOrder(t, repo, "carol", "Latte", "3.50")

	// Retrocede el pedido viejo fuera de la ventana.
	repo.mu.Lock()
	repo.orders[stale].ReceivedAt = time.Now().Add(-25 * time.Hour)
	repo.mu.Unlock()
	ok, err := repo.SetPaid(paid)
	require.NoError(t, err)
	require.True(t, ok)

	h := ordering.NewOrderHistory(repo)
	views, err := h.Current()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, fresh, views[0].OrderID)
}

func TestHistoryStatusOf(t *testing.T) {
	repo := newFakeOrderRepo()
	id := seedOrder(t, repo, "alice", "Latte", "3.50", "Bagel", "2.25")

	h := ordering.NewOrderHistory(repo)
	lines, err := h.StatusOf(id)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.NotEmpty(t, l.Status)
		assert.NotEmpty(t, l.Comments)
	}
}

func TestHistoryStatusOf_Inexistente(t *testing.T) {
	h := ordering.NewOrderHistory(newFakeOrderRepo())

	_, err := h.StatusOf(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
