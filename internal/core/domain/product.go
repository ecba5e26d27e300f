package domain

// Product is a sellable product record. Image holds the raw picture encoded
// as base64, the way the business store persists binary fields.
type Product struct {
	ID          int      `json:"id" bson:"_id,omitempty"`
	Name        string   `json:"name" bson:"name"`
	ListPrice   float64  `json:"list_price" bson:"list_price"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Category    NamedRef `json:"category" bson:"category"`
	Image       string   `json:"-" bson:"image,omitempty"`
}

// Category is a product category.
type Category struct {
	ID   int    `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}
