// Package cart menyimpan keranjang belanja per sesi di belakang port
// persistensi, menggantikan keranjang localStorage milik klien lama.
package cart

import (
	"math"

	"basketly-backend/apperr"
)

// Rate pajak yang dikenakan pada subtotal keranjang.
const taxRate = 0.05

// Item adalah satu entri keranjang: snapshot produk plus jumlahnya.
type Item struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discountPrice,omitempty"`
	Image         string  `json:"image,omitempty"`
	Quantity      int     `json:"quantity"`
}

// UnitPrice mengembalikan harga efektif: harga diskon bila valid,
// selain itu harga normal.
func (i Item) UnitPrice() float64 {
	if i.DiscountPrice > 0 && i.DiscountPrice < i.Price {
		return i.DiscountPrice
	}
	return i.Price
}

// Cart adalah isi keranjang satu sesi. Item diurutkan sesuai urutan
// penambahan dan unik per product id.
type Cart struct {
	Items []Item `json:"items"`
}

// Empty melaporkan apakah keranjang kosong.
func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

// Add menambahkan produk ke keranjang. Produk yang sudah ada jumlahnya
// bertambah satu, tidak pernah membuat entri kedua.
func (c *Cart) Add(item Item) {
	for idx := range c.Items {
		if c.Items[idx].ProductID == item.ProductID {
			c.Items[idx].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// SetQuantity mengganti jumlah sebuah entri. Jumlah di bawah 1 ditolak
// dan keranjang tidak berubah.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return apperr.Validation("Quantity must be at least 1")
	}
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity = quantity
			return nil
		}
	}
	return apperr.NotFound("Item not found in cart")
}

// Remove menghapus entri dari keranjang.
func (c *Cart) Remove(productID string) error {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Item not found in cart")
}

// Subtotal menjumlahkan harga efektif kali jumlah untuk semua entri.
// Nilai turunan selalu dihitung ulang dari isi keranjang, tidak pernah
// disimpan.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.UnitPrice() * float64(item.Quantity)
	}
	return sum
}

// Tax menghitung pajak 5% dari subtotal, dibulatkan ke 2 desimal.
func (c *Cart) Tax() float64 {
	return round2(c.Subtotal() * taxRate)
}

// Total adalah subtotal plus pajak.
func (c *Cart) Total() float64 {
	return round2(c.Subtotal() + c.Tax())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
