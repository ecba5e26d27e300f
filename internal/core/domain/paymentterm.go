package domain

// PaymentTerm is an account.payment.term-style record. Note may contain HTML
// markup; the API layer strips tags before serialising it.
type PaymentTerm struct {
	ID   int    `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
	Note string `json:"note,omitempty" bson:"note,omitempty"`
}
