package domain

// NamedRef is an id/name pair for related records (state, country, category).
type NamedRef struct {
	ID   int    `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Partner is a res.partner-style contact record.
type Partner struct {
	ID        int      `json:"id" bson:"_id,omitempty"`
	Name      string   `json:"name" bson:"name"`
	Email     string   `json:"email" bson:"email"`
	VAT       string   `json:"vat,omitempty" bson:"vat,omitempty"`
	Street    string   `json:"street,omitempty" bson:"street,omitempty"`
	Street2   string   `json:"street2,omitempty" bson:"street2,omitempty"`
	City      string   `json:"city,omitempty" bson:"city,omitempty"`
	State     NamedRef `json:"state" bson:"state"`
	Country   NamedRef `json:"country" bson:"country"`
	IsCompany bool     `json:"is_company" bson:"is_company"`
	Phone     string   `json:"phone,omitempty" bson:"phone,omitempty"`
	TeamID    int      `json:"team_id,omitempty" bson:"team_id,omitempty"`
}
