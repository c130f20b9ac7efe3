package arxiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPageBySaturatesAtMaximum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		page   int
		amount int
		want   int
	}{
		{"plain step", 1, 1, 2},
		{"large step", 1, 50, 51},
		{"just below ceiling", 998, 1, 999},
		{"hits ceiling", 999, 1, 1000},
		{"overshoots ceiling", 990, 500, 1000},
		{"already at ceiling", 1000, 3, 1000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Params{Page: tt.page, Query: DefaultQuery}
			p.NextPageBy(tt.amount)
			assert.Equal(t, tt.want, p.Page)
		})
	}
}

func TestPrevPageByFloorsAtZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		page   int
		amount int
		want   int
	}{
		{"plain step", 5, 1, 4},
		{"amount equals page", 5, 5, 0},
		{"amount exceeds page", 3, 10, 0},
		{"already at floor", 0, 1, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Params{Page: tt.page}
			p.PrevPageBy(tt.amount)
			assert.Equal(t, tt.want, p.Page)
			assert.GreaterOrEqual(t, p.Page, 0)
		})
	}
}

func TestAdvanceThenRetreatIsIdentityAwayFromClamps(t *testing.T) {
	t.Parallel()

	for _, page := range []int{1, 17, 400, 950} {
		for _, amount := range []int{1, 5, 49} {
			p := Params{Page: page}
			p.NextPageBy(amount)
			assert.Equal(t, page+amount, p.Page, "advance should be additive below the ceiling")
			p.PrevPageBy(amount)
			assert.Equal(t, page, p.Page)
		}
	}
}

func TestSetQueryAcceptsEmptyString(t *testing.T) {
	t.Parallel()

	p := NewParams()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultQuery, p.Query)

	p.SetQuery("quantum error correction")
	assert.Equal(t, "quantum error correction", p.Query)

	p.SetQuery("")
	assert.Equal(t, "", p.Query)
}
