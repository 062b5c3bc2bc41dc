package ledger

import (
	"slices"
	"sort"

	"CornerStore/internal/model"
)

// Ledger is the append-only sales history.
type Ledger struct {
	sales []model.Sale
}

func New() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(s model.Sale) {
	l.sales = append(l.sales, s)
}

func (l *Ledger) Len() int { return len(l.sales) }

// Find returns the first sale recorded under code. A miss is a valid result,
// not an error.
func (l *Ledger) Find(code string) (model.Sale, bool) {
	for _, s := range l.sales {
		if s.Code == code {
			return s, true
		}
	}
	return model.Sale{}, false
}

// OrderedByDateDescending sorts a copy ascending by date with a stable sort
// and reverses it, so sales sharing a date come out newest-recorded first.
func (l *Ledger) OrderedByDateDescending() []model.Sale {
	return NewestFirst(slices.Clone(l.sales))
}

// NewestFirst orders sales by descending date. Sales sharing a date come out
// newest-recorded first. The input slice is sorted in place.
func NewestFirst(out []model.Sale) []model.Sale {
	if out == nil {
		out = []model.Sale{}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Before(out[j]) })
	slices.Reverse(out)
	return out
}
