package catalog

import "testing"

func sampleProducts() []Product {
	return []Product{
		{Slug: "p1", Categories: []string{"bodysuits"}, Sizes: []string{"M"}, Colors: []string{"Black"}},
		{Slug: "p2", Categories: []string{"bodysuits"}, Sizes: []string{"L"}, Colors: []string{"Blush"}},
		{Slug: "p3", Categories: []string{"shorts"}, Sizes: []string{"M"}, Colors: []string{"Black"}},
	}
}

func slugs(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Slug
	}
	return out
}

func assertSlugs(t *testing.T, got []Product, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, slugs(got))
	}
	for i := range want {
		if got[i].Slug != want[i] {
			t.Fatalf("expected %v, got %v", want, slugs(got))
		}
	}
}

func TestFilterByCategoryPreservesOrder(t *testing.T) {
	t.Parallel()

	got := Filter(sampleProducts(), Criteria{Category: "bodysuits"})
	assertSlugs(t, got, "p1", "p2")
}

func TestFilterNarrowsBySize(t *testing.T) {
	t.Parallel()

	got := Filter(sampleProducts(), Criteria{Category: "bodysuits", Size: "M"})
	assertSlugs(t, got, "p1")
}

func TestFilterNarrowsByColor(t *testing.T) {
	t.Parallel()

	got := Filter(sampleProducts(), Criteria{Category: "bodysuits", Color: "Blush"})
	assertSlugs(t, got, "p2")
}

func TestFilterCombinedCriteria(t *testing.T) {
	t.Parallel()

	got := Filter(sampleProducts(), Criteria{Category: "bodysuits", Size: "L", Color: "Blush"})
	assertSlugs(t, got, "p2")

	got = Filter(sampleProducts(), Criteria{Category: "bodysuits", Size: "M", Color: "Blush"})
	assertSlugs(t, got)
}

func TestFilterNoMatchReturnsEmptyNotNil(t *testing.T) {
	t.Parallel()

	got := Filter(sampleProducts(), Criteria{Category: "leggings"})
	if got == nil {
		t.Fatal("filter must return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", slugs(got))
	}
}

func TestFilterEmptySetsMatchNothing(t *testing.T) {
	t.Parallel()

	products := []Product{
		{Slug: "no-category", Sizes: []string{"M"}, Colors: []string{"Black"}},
		{Slug: "no-sizes", Categories: []string{"bodysuits"}, Colors: []string{"Black"}},
		{Slug: "no-colors", Categories: []string{"bodysuits"}, Sizes: []string{"M"}},
	}

	got := Filter(products, Criteria{Category: "bodysuits"})
	assertSlugs(t, got, "no-sizes", "no-colors")

	got = Filter(products, Criteria{Category: "bodysuits", Size: "M"})
	assertSlugs(t, got, "no-colors")

	got = Filter(products, Criteria{Category: "bodysuits", Color: "Black"})
	assertSlugs(t, got, "no-sizes")
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	products := sampleProducts()
	_ = Filter(products, Criteria{Category: "bodysuits", Size: "M"})

	assertSlugs(t, products, "p1", "p2", "p3")
}
