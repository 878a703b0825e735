package models

const (
	CheckoutStepContact  = 1
	CheckoutStepShipping = 2
	CheckoutStepPayment  = 3
)

type ContactInfo struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,max=30"`
}

type ShippingInfo struct {
	Address    string `json:"address" validate:"required,max=200"`
	City       string `json:"city" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=20"`
}

// PaymentInfo is collected for the form only. It is never persisted or sent anywhere.
type PaymentInfo struct {
	CardNumber string `json:"card_number" validate:"required,min=12,max=23"`
	CardName   string `json:"card_name" validate:"required,max=100"`
	CardExpiry string `json:"card_expiry" validate:"required,len=5"`
	CardCVV    string `json:"card_cvv" validate:"required,numeric,min=3,max=4"`
}

type CheckoutForm struct {
	Contact  ContactInfo  `json:"contact" validate:"required"`
	Shipping ShippingInfo `json:"shipping" validate:"required"`
	Payment  PaymentInfo  `json:"payment" validate:"required"`
}

// CheckoutState is the persisted step state of the form; payment data is deliberately absent.
type CheckoutState struct {
	Step     int          `json:"step"`
	Contact  ContactInfo  `json:"contact"`
	Shipping ShippingInfo `json:"shipping"`
}

type CheckoutResult struct {
	Order *Order    `json:"order"`
	Cart  *CartView `json:"cart"`
}
