package cart

import (
	"github.com/Soloken19/shapewear-dev/pkg/types"
)

// Item is one purchasable line in the cart. Name and Price are
// snapshots captured when the item was added; later catalog price
// drift does not touch existing lines.
type Item struct {
	ProductID string       `json:"productId"`
	Slug      string       `json:"slug"`
	Name      string       `json:"name"`
	Price     types.Amount `json:"price"`
	Qty       int          `json:"qty"`
	Size      string       `json:"size"`
	Color     string       `json:"color"`
}

// identity is the merge/dedup key: two additions collapse into one
// line iff slug, size and color all match.
type identity struct {
	slug  string
	size  string
	color string
}

func (i Item) identity() identity {
	return identity{slug: i.Slug, size: i.Size, color: i.Color}
}

// State is the serialized cart shape. Item order is insertion order
// and is meaningful: display and index-based removal both rely on it.
type State struct {
	Items     []Item `json:"items"`
	PromoCode string `json:"promoCode"`
}

// clone returns a deep value copy of the state.
func (s State) clone() State {
	out := State{PromoCode: s.PromoCode, Items: make([]Item, len(s.Items))}
	copy(out.Items, s.Items)
	return out
}

// normalize repairs a freshly loaded state so the engine invariants
// hold: a non-nil item slice and quantities of at least 1.
func (s *State) normalize() {
	if s.Items == nil {
		s.Items = []Item{}
	}
	for i := range s.Items {
		if s.Items[i].Qty < 1 {
			s.Items[i].Qty = 1
		}
	}
}

func emptyState() State {
	return State{Items: []Item{}}
}
