package catalog

// Criteria narrows a product list. Category is mandatory; size and
// color are optional extra predicates.
type Criteria struct {
	Category string
	Size     string
	Color    string
}

// Filter returns the products matching the criteria, preserving input
// order. A product matches when its category set contains the required
// category and, for each optional dimension that is set, the product's
// declared set contains the value. An empty product set matches
// nothing for an active dimension, so a product with no sizes is
// excluded whenever a size filter is applied. The result is never nil.
func Filter(products []Product, criteria Criteria) []Product {
	out := []Product{}
	for _, p := range products {
		if !contains(p.Categories, criteria.Category) {
			continue
		}
		if criteria.Size != "" && !contains(p.Sizes, criteria.Size) {
			continue
		}
		if criteria.Color != "" && !contains(p.Colors, criteria.Color) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func contains(set []string, value string) bool {
	for _, entry := range set {
		if entry == value {
			return true
		}
	}
	return false
}
