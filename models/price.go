package models

// PriceBreakdown is the priced snapshot of a booking request. All amounts
// are integers in minor currency units (kobo); floating point is never
// used for money.
type PriceBreakdown struct {
	Base      int64 `bson:"base" json:"base"`
	Media     int64 `bson:"media" json:"media"`
	LED       int64 `bson:"led" json:"led"`
	Sound     int64 `bson:"sound" json:"sound"`
	Drinks    int64 `bson:"drinks" json:"drinks"`
	Streaming int64 `bson:"streaming" json:"streaming"`

	Subtotal int64 `bson:"subtotal" json:"subtotal"` // base + add-on lines
	Tax      int64 `bson:"tax" json:"tax"`           // 7.5% of subtotal
	Total    int64 `bson:"total" json:"total"`       // subtotal + tax

	Currency string `bson:"currency" json:"currency"`
}
