package cart

import (
	"sync"
	"time"

	"basketly-backend/apperr"
	"basketly-backend/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Manager mengoordinasikan operasi keranjang per sesi di atas Storage.
// Satu mutex melindungi siklus baca-ubah-tulis karena beberapa request
// bisa memakai sesi yang sama.
type Manager struct {
	mu    sync.Mutex
	store Storage
}

// NewManager membuat Manager di atas store yang diberikan.
func NewManager(store Storage) *Manager {
	return &Manager{store: store}
}

// NewSessionID membuat id sesi keranjang untuk klien tanpa login.
func NewSessionID() string {
	return uuid.NewString()
}

// Get mengembalikan keranjang sesi.
func (m *Manager) Get(sessionID string) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Load(sessionID)
}

// AddItem menambahkan produk (atau menaikkan jumlahnya) lalu menyimpan.
func (m *Manager) AddItem(sessionID string, item Item) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	c.Add(item)
	if err := m.store.Save(sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetQuantity mengganti jumlah sebuah entri lalu menyimpan. Jumlah yang
// ditolak tidak mengubah keranjang tersimpan.
func (m *Manager) SetQuantity(sessionID, productID string, quantity int) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if err := c.SetQuantity(productID, quantity); err != nil {
		return nil, err
	}
	if err := m.store.Save(sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem menghapus entri lalu menyimpan.
func (m *Manager) RemoveItem(sessionID, productID string) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if err := c.Remove(productID); err != nil {
		return nil, err
	}
	if err := m.store.Save(sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Checkout membangun Order dari isi keranjang. Keranjang yang kosong
// ditolak. Keranjang TIDAK dikosongkan di sini; panggil Clear setelah
// order berhasil dipersist supaya kegagalan tulis tidak menghilangkan
// isi keranjang.
func (m *Manager) Checkout(sessionID, customerName, customerEmail string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if c.Empty() {
		return nil, apperr.Validation("No items provided")
	}

	items := make([]models.OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, apperr.Validation("Invalid product in cart: " + item.ProductID)
		}
		items = append(items, models.OrderItem{
			ProductID: productID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity,
		})
	}

	return &models.Order{
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Items:         items,
		TotalAmount:   c.Total(),
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
	}, nil
}

// Clear mengosongkan keranjang sesi.
func (m *Manager) Clear(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Delete(sessionID)
}
