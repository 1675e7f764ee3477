package entity

import "github.com/shopspring/decimal"

// DeliveryOption is a flat-priced shipping tier. Tiers are static reference data;
// exactly one is selected on a draft at any time.
type DeliveryOption struct {
	ID       string          `json:"id"        validate:"required,max=30"`
	Name     string          `json:"name"      validate:"required,max=100"`
	Price    decimal.Decimal `json:"price"     validate:"required"`
	LeadTime string          `json:"lead_time" validate:"required,max=100"`
}

// Address is the delivery destination of a purchase order. Every field except
// SpecialInstructions must be present before a draft can be submitted.
type Address struct {
	Street              string `json:"street"               validate:"required,max=200"`
	City                string `json:"city"                 validate:"required,max=100"`
	State               string `json:"state"                validate:"required,max=100"`
	Zip                 string `json:"zip"                  validate:"required,max=20"`
	Phone               string `json:"phone"                validate:"required,max=30"`
	SpecialInstructions string `json:"special_instructions" validate:"max=500"`
}

// Complete reports whether all required address fields are filled in.
func (a *Address) Complete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.Zip != "" && a.Phone != ""
}
