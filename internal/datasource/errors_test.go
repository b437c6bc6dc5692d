package datasource

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "cafepos/pkg/domain-errors"
	"cafepos/pkg/platform/sentinel"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, Translate(nil, "Order"))

	err := Translate(sentinel.ErrNotFound, "Order")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	assert.EqualError(t, err, "Order not found")

	err = Translate(fmt.Errorf("save: %w", sentinel.ErrConflict), "Store")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	assert.ErrorIs(t, err, sentinel.ErrConflict)

	raw := errors.New("connection reset by peer")
	assert.Same(t, raw, Translate(raw, "Order"))
}

func TestPagination(t *testing.T) {
	p := Pagination{Page: 0, Limit: 500}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 40, Pagination{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, Pagination{}.Offset())

	tests := []struct {
		name       string
		pagination Pagination
	}{
		{name: "page near MaxInt with explicit limit", pagination: Pagination{Page: math.MaxInt / 10, Limit: 20}},
		{name: "page at MaxInt", pagination: Pagination{Page: math.MaxInt, Limit: 20}},
		{name: "page at MaxInt with default limit", pagination: Pagination{Page: math.MaxInt}},
		{name: "page at MaxInt with max limit", pagination: Pagination{Page: math.MaxInt, Limit: MaxLimit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.pagination.Normalize()
			offset := tt.pagination.Offset()
			assert.GreaterOrEqual(t, offset, 0)
			assert.LessOrEqual(t, offset, math.MaxInt-n.Limit)
		})
	}
}
