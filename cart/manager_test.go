package cart

import (
	"testing"

	"basketly-backend/apperr"
	"basketly-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestManager() *Manager {
	return NewManager(NewMemoryStorage())
}

func TestManager_UnknownSessionIsEmptyCart(t *testing.T) {
	m := newTestManager()

	c, err := m.Get("nobody")
	require.NoError(t, err)
	assert.True(t, c.Empty())
}

func TestManager_AddItemPersists(t *testing.T) {
	m := newTestManager()
	productID := primitive.NewObjectID().Hex()

	_, err := m.AddItem("sess", Item{ProductID: productID, Name: "Tea", Price: 50})
	require.NoError(t, err)

	c, err := m.Get("sess")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)

	// Sesi lain tidak melihat keranjang ini.
	other, err := m.Get("other")
	require.NoError(t, err)
	assert.True(t, other.Empty())
}

func TestManager_SetQuantityRejectionLeavesStoredCart(t *testing.T) {
	m := newTestManager()
	productID := primitive.NewObjectID().Hex()

	_, err := m.AddItem("sess", Item{ProductID: productID, Price: 10})
	require.NoError(t, err)

	_, err = m.SetQuantity("sess", productID, 0)
	require.Error(t, err)

	c, err := m.Get("sess")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestManager_CheckoutEmptyCartFails(t *testing.T) {
	m := newTestManager()

	order, err := m.Checkout("sess", "Asha", "asha@example.com")
	require.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
}

func TestManager_CheckoutBuildsOrder(t *testing.T) {
	m := newTestManager()
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()

	_, err := m.AddItem("sess", Item{ProductID: p1.Hex(), Name: "Tea", Price: 100, DiscountPrice: 80})
	require.NoError(t, err)
	_, err = m.AddItem("sess", Item{ProductID: p1.Hex()})
	require.NoError(t, err)
	_, err = m.AddItem("sess", Item{ProductID: p2.Hex(), Name: "Sugar", Price: 50})
	require.NoError(t, err)

	order, err := m.Checkout("sess", "Asha", "asha@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Asha", order.CustomerName)
	assert.Equal(t, "asha@example.com", order.CustomerEmail)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 220.5, order.TotalAmount)
	assert.False(t, order.CreatedAt.IsZero())

	require.Len(t, order.Items, 2)
	assert.Equal(t, p1, order.Items[0].ProductID)
	assert.Equal(t, 80.0, order.Items[0].UnitPrice)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, p2, order.Items[1].ProductID)
	assert.Equal(t, 1, order.Items[1].Quantity)
}

func TestManager_CheckoutDoesNotClearUntilTold(t *testing.T) {
	m := newTestManager()
	productID := primitive.NewObjectID().Hex()

	_, err := m.AddItem("sess", Item{ProductID: productID, Price: 10})
	require.NoError(t, err)

	_, err = m.Checkout("sess", "Asha", "asha@example.com")
	require.NoError(t, err)

	c, err := m.Get("sess")
	require.NoError(t, err)
	assert.False(t, c.Empty(), "checkout alone must not drop the cart")

	require.NoError(t, m.Clear("sess"))

	c, err = m.Get("sess")
	require.NoError(t, err)
	assert.True(t, c.Empty())
}

func TestManager_CheckoutRejectsInvalidProductID(t *testing.T) {
	m := newTestManager()

	_, err := m.AddItem("sess", Item{ProductID: "not-an-object-id", Price: 10})
	require.NoError(t, err)

	_, err = m.Checkout("sess", "Asha", "asha@example.com")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
}

func TestNewSessionID_Unique(t *testing.T) {
	assert.NotEqual(t, NewSessionID(), NewSessionID())
}

func TestMemoryStorage_RoundTrip(t *testing.T) {
	s := NewMemoryStorage()

	saved := &Cart{Items: []Item{{ProductID: "p1", Name: "Tea", Price: 50, Quantity: 2}}}
	require.NoError(t, s.Save("sess", saved))

	loaded, err := s.Load("sess")
	require.NoError(t, err)
	assert.Equal(t, saved.Items, loaded.Items)

	require.NoError(t, s.Delete("sess"))
	loaded, err = s.Load("sess")
	require.NoError(t, err)
	assert.True(t, loaded.Empty())
}
