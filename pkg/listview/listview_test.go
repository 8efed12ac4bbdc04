package listview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func makeRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{Code: fmt.Sprintf("C%03d", i+1), Name: fmt.Sprintf("Airline %d", i+1)}
	}
	return rows
}

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		n          int
		totalPages int
		firstPage  int
	}{
		{0, 1, 0},
		{1, 1, 1},
		{10, 1, 10},
		{11, 2, 10},
		{25, 3, 10},
	}

	for _, tc := range cases {
		page := Build(makeRows(tc.n), Options[row]{Page: 1})
		assert.Equal(t, tc.totalPages, page.TotalPages, "n=%d", tc.n)
		assert.Len(t, page.Items, tc.firstPage, "n=%d", tc.n)
	}
}

func TestBuildClampsPage(t *testing.T) {
	rows := makeRows(25)

	page := Build(rows, Options[row]{Page: 99})
	assert.Equal(t, 3, page.CurrentPage)
	assert.Len(t, page.Items, 5)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)

	page = Build(rows, Options[row]{Page: -4})
	assert.Equal(t, 1, page.CurrentPage)

	// empty lists still render page 1, never page 0
	page = Build(nil, Options[row]{Page: 3})
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
}

func TestBuildSearchMatchesAnyField(t *testing.T) {
	rows := []row{
		{Code: "QF1", Name: "Qantas"},
		{Code: "BA9", Name: "British Airways"},
	}

	page := Build(rows, Options[row]{Search: "qf", Page: 1})
	assert.Equal(t, 1, page.Matched)
	assert.Equal(t, "Qantas", page.Items[0].Name)

	// case-insensitive, matches any stringified field
	page = Build(rows, Options[row]{Search: "AIRWAYS", Page: 1})
	assert.Equal(t, 1, page.Matched)
	assert.Equal(t, "BA9", page.Items[0].Code)
}

func TestBuildSearchSeesDecoratedFields(t *testing.T) {
	rows := []row{{Code: "QF1"}}
	page := Build(rows, Options[row]{
		Decorate: func(r row) row {
			r.Name = "Qantas"
			return r
		},
		Search: "qantas",
		Page:   1,
	})
	assert.Equal(t, 1, page.Matched)
}

func TestBuildFilterBeforeSearch(t *testing.T) {
	rows := []row{
		{Code: "QF1", Name: "Qantas Alpha"},
		{Code: "BA9", Name: "British Alpha"},
	}
	page := Build(rows, Options[row]{
		Filter: func(r row) bool { return r.Code == "BA9" },
		Search: "alpha",
		Page:   1,
	})
	assert.Equal(t, 1, page.Matched)
	assert.Equal(t, "BA9", page.Items[0].Code)
}

func TestBuildEmptyStates(t *testing.T) {
	// zero rows overall: the creation affordance
	page := Build(nil, Options[row]{Page: 1})
	assert.Equal(t, StateNoData, page.State)

	// rows exist but the search matches nothing: inline no-results row
	page = Build(makeRows(5), Options[row]{Search: "zzz", Page: 1})
	assert.Equal(t, StateNoResults, page.State)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 0, page.Matched)
}

func TestViewSearchResetsPage(t *testing.T) {
	v := NewView()
	v.SetPage(7)
	assert.Equal(t, 7, v.Page())

	v.SetSearch("qantas")
	assert.Equal(t, 1, v.Page())

	// unchanged search keeps the page
	v.SetPage(3)
	v.SetSearch("qantas")
	assert.Equal(t, 3, v.Page())
}

func TestViewFilterResetsPage(t *testing.T) {
	v := NewView()
	v.SetPage(4)
	v.SetFilter("QF1")
	assert.Equal(t, 1, v.Page())

	v.SetPage(2)
	v.SetFilter("QF1")
	assert.Equal(t, 2, v.Page())

	v.SetFilter("")
	assert.Equal(t, 1, v.Page())
}
