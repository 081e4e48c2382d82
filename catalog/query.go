package catalog

import (
	"net/url"
	"regexp"
	"strconv"

	"basketly-backend/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SortKey adalah field yang diizinkan untuk pengurutan listing.
type SortKey string

// SortOrder adalah arah pengurutan yang diizinkan.
type SortOrder string

const (
	SortByPrice    SortKey = "price"
	SortByRating   SortKey = "rating"
	SortByDiscount SortKey = "discount"

	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// ListQuery adalah parameter listing produk yang sudah divalidasi.
// Filter yang nil/kosong tidak membatasi hasil.
type ListQuery struct {
	Search      string
	Category    string
	PriceMin    *float64
	PriceMax    *float64
	RatingMin   *float64
	DiscountMin *float64
	SortBy      SortKey
	SortOrder   SortOrder
	Page        int64
	Limit       int64
}

// ParseListQuery membangun ListQuery dari query string, menolak nilai
// yang tidak dikenal alih-alih meneruskannya begitu saja.
func ParseListQuery(values url.Values) (*ListQuery, error) {
	q := &ListQuery{
		Search:    values.Get("search"),
		Category:  values.Get("category"),
		SortBy:    SortByPrice,
		SortOrder: OrderAsc,
		Page:      1,
		Limit:     defaultLimit,
	}

	if v := values.Get("sortBy"); v != "" {
		switch SortKey(v) {
		case SortByPrice, SortByRating, SortByDiscount:
			q.SortBy = SortKey(v)
		default:
			return nil, apperr.Validation("Invalid sortBy value: " + v)
		}
	}

	if v := values.Get("sortOrder"); v != "" {
		switch SortOrder(v) {
		case OrderAsc, OrderDesc:
			q.SortOrder = SortOrder(v)
		default:
			return nil, apperr.Validation("Invalid sortOrder value: " + v)
		}
	}

	if v := values.Get("page"); v != "" {
		page, err := strconv.ParseInt(v, 10, 64)
		if err != nil || page < 1 {
			return nil, apperr.Validation("Invalid page value: " + v)
		}
		q.Page = page
	}

	if v := values.Get("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil || limit < 1 {
			return nil, apperr.Validation("Invalid limit value: " + v)
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		q.Limit = limit
	}

	var err error
	if q.PriceMin, err = parseFloat(values, "priceMin"); err != nil {
		return nil, err
	}
	if q.PriceMax, err = parseFloat(values, "priceMax"); err != nil {
		return nil, err
	}
	if q.RatingMin, err = parseFloat(values, "ratingMin"); err != nil {
		return nil, err
	}
	if q.DiscountMin, err = parseFloat(values, "discountMin"); err != nil {
		return nil, err
	}

	return q, nil
}

func parseFloat(values url.Values, key string) (*float64, error) {
	v := values.Get(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, apperr.Validation("Invalid " + key + " value: " + v)
	}
	return &f, nil
}

// Filter membangun dokumen filter MongoDB dari query.
func (q *ListQuery) Filter() bson.M {
	filter := bson.M{}

	if q.Search != "" {
		// Substring match, case-insensitive. QuoteMeta agar input pengguna
		// tidak dibaca sebagai pola regex.
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(q.Search), "$options": "i"}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}

	price := bson.M{}
	if q.PriceMin != nil {
		price["$gte"] = *q.PriceMin
	}
	if q.PriceMax != nil {
		price["$lte"] = *q.PriceMax
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	if q.RatingMin != nil {
		filter["rating"] = bson.M{"$gte": *q.RatingMin}
	}
	if q.DiscountMin != nil {
		filter["discount"] = bson.M{"$gte": *q.DiscountMin}
	}

	return filter
}

// Sort membangun spesifikasi pengurutan. _id ascending dipakai sebagai
// tie-break supaya paginasi stabil saat nilai sort key sama.
func (q *ListQuery) Sort() bson.D {
	dir := 1
	if q.SortOrder == OrderDesc {
		dir = -1
	}
	return bson.D{{Key: string(q.SortBy), Value: dir}, {Key: "_id", Value: 1}}
}

// Skip mengembalikan offset dokumen untuk halaman yang diminta.
func (q *ListQuery) Skip() int64 {
	return (q.Page - 1) * q.Limit
}

// FindOptions membangun opsi Find lengkap (sort, skip, limit).
func (q *ListQuery) FindOptions() *options.FindOptions {
	return options.Find().SetSort(q.Sort()).SetSkip(q.Skip()).SetLimit(q.Limit)
}
