package catalog

import (
	"net/url"
	"testing"

	"basketly-backend/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseListQuery_Defaults(t *testing.T) {
	q, err := ParseListQuery(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, SortByPrice, q.SortBy)
	assert.Equal(t, OrderAsc, q.SortOrder)
	assert.Equal(t, int64(1), q.Page)
	assert.Equal(t, int64(20), q.Limit)
	assert.Equal(t, bson.M{}, q.Filter())
	assert.Equal(t, int64(0), q.Skip())
}

func TestParseListQuery_AllParams(t *testing.T) {
	values := url.Values{}
	values.Set("search", "choco")
	values.Set("category", "Snacks")
	values.Set("priceMin", "10")
	values.Set("priceMax", "99.5")
	values.Set("ratingMin", "4")
	values.Set("discountMin", "25")
	values.Set("sortBy", "rating")
	values.Set("sortOrder", "desc")
	values.Set("page", "3")
	values.Set("limit", "10")

	q, err := ParseListQuery(values)
	require.NoError(t, err)

	assert.Equal(t, SortByRating, q.SortBy)
	assert.Equal(t, OrderDesc, q.SortOrder)
	assert.Equal(t, int64(20), q.Skip())

	filter := q.Filter()
	assert.Equal(t, bson.M{"$regex": "choco", "$options": "i"}, filter["name"])
	assert.Equal(t, "Snacks", filter["category"])
	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 99.5}, filter["price"])
	assert.Equal(t, bson.M{"$gte": 4.0}, filter["rating"])
	assert.Equal(t, bson.M{"$gte": 25.0}, filter["discount"])
}

func TestParseListQuery_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown sort key", "sortBy", "name"},
		{"unknown sort order", "sortOrder", "sideways"},
		{"non-numeric page", "page", "abc"},
		{"zero page", "page", "0"},
		{"negative page", "page", "-1"},
		{"non-numeric limit", "limit", "many"},
		{"zero limit", "limit", "0"},
		{"non-numeric priceMin", "priceMin", "cheap"},
		{"non-numeric priceMax", "priceMax", "exp"},
		{"non-numeric ratingMin", "ratingMin", "good"},
		{"non-numeric discountMin", "discountMin", "big"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			values.Set(tt.key, tt.value)

			q, err := ParseListQuery(values)
			require.Error(t, err)
			assert.Nil(t, q)
			assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
		})
	}
}

func TestParseListQuery_CapsLimit(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "5000")

	q, err := ParseListQuery(values)
	require.NoError(t, err)
	assert.Equal(t, int64(100), q.Limit)
}

func TestListQuery_SearchEscapesRegex(t *testing.T) {
	values := url.Values{}
	values.Set("search", "a.b(c)")

	q, err := ParseListQuery(values)
	require.NoError(t, err)

	filter := q.Filter()
	assert.Equal(t, bson.M{"$regex": `a\.b\(c\)`, "$options": "i"}, filter["name"])
}

func TestListQuery_SortTieBreak(t *testing.T) {
	q := &ListQuery{SortBy: SortByDiscount, SortOrder: OrderDesc}
	assert.Equal(t, bson.D{
		{Key: "discount", Value: -1},
		{Key: "_id", Value: 1},
	}, q.Sort())

	q = &ListQuery{SortBy: SortByPrice, SortOrder: OrderAsc}
	assert.Equal(t, bson.D{
		{Key: "price", Value: 1},
		{Key: "_id", Value: 1},
	}, q.Sort())
}

func TestListQuery_Skip(t *testing.T) {
	q := &ListQuery{Page: 4, Limit: 25}
	assert.Equal(t, int64(75), q.Skip())
}
