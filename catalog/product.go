// Package catalog berisi logika query dan derivasi field produk.
package catalog

import "math"

// ComputeDiscount menghitung persentase diskon, dibulatkan ke bilangan
// bulat terdekat. Harga diskon yang kosong atau >= harga normal berarti
// tidak ada diskon.
func ComputeDiscount(price, discountPrice float64) int {
	if price <= 0 || discountPrice <= 0 || discountPrice >= price {
		return 0
	}
	return int(math.Round((price - discountPrice) / price * 100))
}

// InStock melaporkan apakah jumlah stok berarti produk tersedia.
func InStock(count int) bool {
	return count > 0
}

// TotalPages menghitung jumlah halaman dari total dokumen yang cocok.
func TotalPages(count, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}
