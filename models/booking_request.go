package models

// AddonSelection records which optional services a customer wants.
// Each add-on is a flat per-session fee on top of the base pitch rate.
type AddonSelection struct {
	MediaServices  bool `bson:"mediaServices" json:"mediaServices"`
	LEDScreen      bool `bson:"ledScreen" json:"ledScreen"`
	SoundEquipment bool `bson:"soundEquipment" json:"soundEquipment"`
	DrinksCorkage  bool `bson:"drinksCorkage" json:"drinksCorkage"`
	Streaming      bool `bson:"streaming" json:"streaming"`
}

// BookingRequest is the customer-supplied intent. It is transient and is
// never persisted until the reservation is committed.
type BookingRequest struct {
	CustomerName    string         `json:"customerName"`
	Contact         string         `json:"contact"` // phone or email
	StartDate       string         `json:"startDate"`
	EndDate         string         `json:"endDate"`
	HoursPerSession int            `json:"hoursPerSession"`
	Addons          AddonSelection `json:"addons"`

	// Filled from the auth token when present; empty means a guest booking.
	UserID    string `json:"userId,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`

	// Set only by the administrative block path, never from client JSON.
	HoldReason string `json:"-"`
}
