package domain

// SaleOrderLine is a single order line. Quantity and Price mirror the store's
// product_uom_qty and price_unit fields.
type SaleOrderLine struct {
	ID          int     `json:"id" bson:"id"`
	ProductID   int     `json:"product_id" bson:"product_id"`
	ProductName string  `json:"product_name" bson:"product_name"`
	Quantity    float64 `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
}

// SaleOrder is a sale.order-style record with nested lines. Date is kept as
// the store's plain "YYYY-MM-DD HH:MM:SS" string; this layer never does date
// arithmetic on it.
type SaleOrder struct {
	ID          int             `json:"id" bson:"_id,omitempty"`
	Name        string          `json:"name" bson:"name"`
	Date        string          `json:"date" bson:"date"`
	PartnerID   int             `json:"partner_id" bson:"partner_id"`
	AmountTotal float64         `json:"amount_total" bson:"amount_total"`
	State       string          `json:"state,omitempty" bson:"state,omitempty"`
	Lines       []SaleOrderLine `json:"lines" bson:"lines"`
}
