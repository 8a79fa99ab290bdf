package valueobjects

import "fmt"

// PricingModel classifies how a tool charges its users.
type PricingModel string

const (
	PricingFree     PricingModel = "Free"
	PricingFreemium PricingModel = "Freemium"
	PricingPaid     PricingModel = "Paid"
	PricingCustom   PricingModel = "Custom"
)

var validPricingModels = map[PricingModel]bool{
	PricingFree:     true,
	PricingFreemium: true,
	PricingPaid:     true,
	PricingCustom:   true,
}

func NewPricingModel(s string) (PricingModel, error) {
	pm := PricingModel(s)
	if !validPricingModels[pm] {
		return "", fmt.Errorf("invalid pricing model: %s", s)
	}
	return pm, nil
}

// ParsePricingModel returns nil for values outside the enumerated set, so
// list filters can ignore unrecognized input rather than reject it.
func ParsePricingModel(s string) *PricingModel {
	if pm, err := NewPricingModel(s); err == nil {
		return &pm
	}
	return nil
}

func (p PricingModel) String() string {
	return string(p)
}
