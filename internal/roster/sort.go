package roster

import (
	"fmt"
	"sort"
	"strings"

	"github.com/careercrafter/crafter/internal/models"
)

// Order is the score-column sort state. A header click cycles
// none → asc → desc → none.
type Order string

const (
	OrderNone Order = "none"
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Next returns the following state in the toggle cycle.
func (o Order) Next() Order {
	switch o {
	case OrderNone:
		return OrderAsc
	case OrderAsc:
		return OrderDesc
	default:
		return OrderNone
	}
}

func ParseOrder(value string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(value))) {
	case OrderNone, "":
		return OrderNone, nil
	case OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	default:
		return OrderNone, fmt.Errorf("unknown sort order: %s (valid: none, asc, desc)", value)
	}
}

// Assessments is the assessment-roster state: a pager plus the score sort.
// Changing the sort resets the page; paging never resets the sort.
type Assessments struct {
	*Pager
	order Order
}

func NewAssessments(size int) *Assessments {
	return &Assessments{Pager: NewPager(size), order: OrderNone}
}

func (a *Assessments) Order() Order { return a.order }

// CycleSort advances the toggle cycle and returns to the first page.
func (a *Assessments) CycleSort() Order {
	a.order = a.order.Next()
	a.Reset()
	return a.order
}

// SetSort selects an explicit order; a change resets the page.
func (a *Assessments) SetSort(order Order) {
	if order == a.order {
		return
	}
	a.order = order
	a.Reset()
}

// SortScores orders the current page's rows by score. Only the fetched page
// is sorted, never the whole dataset. OrderNone preserves the fetched
// display order; nil scores sort as the lowest possible value; the sort is
// stable for equal scores.
func SortScores(assessments []models.Assessment, order Order) []models.Assessment {
	out := make([]models.Assessment, len(assessments))
	copy(out, assessments)
	if order == OrderNone {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := scoreRank(out[i]), scoreRank(out[j])
		if order == OrderAsc {
			return a < b
		}
		return a > b
	})
	return out
}

func scoreRank(a models.Assessment) int {
	if a.Score == nil {
		return -1
	}
	return *a.Score
}
