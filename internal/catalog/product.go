package catalog

import "github.com/Soloken19/shapewear-dev/pkg/types"

// Product is the listing shape returned by the catalog service.
type Product struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	Price        types.Amount `json:"price"`
	Sizes        []string     `json:"sizes"`
	Colors       []string     `json:"colors"`
	Compression  string       `json:"compression"`
	Categories   []string     `json:"categories"`
	Image        string       `json:"image,omitempty"`
	Rating       *float64     `json:"rating,omitempty"`
	ReviewsCount int          `json:"reviewsCount"`
}

// Fabric describes the material of a product.
type Fabric struct {
	Composition string `json:"composition"`
	Feel        string `json:"feel"`
	Care        string `json:"care"`
}

// Review is a single customer review on a product detail page.
type Review struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Images groups the media slots a product page renders.
type Images struct {
	Primary string   `json:"primary"`
	Gallery []string `json:"gallery,omitempty"`
	Before  string   `json:"before,omitempty"`
	After   string   `json:"after,omitempty"`
}

// Detail is the full product shape from the detail endpoint.
type Detail struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Price       types.Amount `json:"price"`
	Sizes       []string     `json:"sizes"`
	Colors      []string     `json:"colors"`
	Compression string       `json:"compression"`
	Categories  []string     `json:"categories"`
	Description string       `json:"description"`
	Fabric      Fabric       `json:"fabric"`
	Images      Images       `json:"images"`
	Reviews     []Review     `json:"reviews"`
}
