// Package decorator wraps a priced item to recompute its price while keeping
// its interface, composable to arbitrary depth.
package decorator

import (
	"math"
	"strconv"
)

// PricedItem is the capability shared by plain and wrapped items.
type PricedItem interface {
	Type() string
	Price() float64
}

// Car is the plain item at the bottom of any wrapper chain.
type Car struct {
	model string
	price float64
}

var _ PricedItem = Car{}

// NewCar returns the demo car: a Tesla priced at 1000.
func NewCar() Car {
	return Car{model: "Tesla", price: 1000}
}

func (c Car) Type() string   { return c.model }
func (c Car) Price() float64 { return c.price }

// SpecialOffer decorates any PricedItem with a percentage discount. The
// discount defaults to 0 and is deliberately unvalidated; values outside
// [0,100] produce inflated or negative prices rather than errors.
type SpecialOffer struct {
	item PricedItem

	Offer              string
	DiscountPercentage int
}

var _ PricedItem = (*SpecialOffer)(nil)

// NewSpecialOffer wraps the given item. The result is itself a PricedItem, so
// offers can be stacked.
func NewSpecialOffer(item PricedItem) *SpecialOffer {
	return &SpecialOffer{item: item}
}

// Type passes through to the wrapped item, so a wrapper chain always reports
// the innermost item's type.
func (s *SpecialOffer) Type() string {
	return s.item.Type()
}

// Price is computed on every read from the immediately wrapped item's price,
// rounded to two decimal places.
func (s *SpecialOffer) Price() float64 {
	discounted := s.item.Price() * float64(100-s.DiscountPercentage) / 100
	return math.Round(discounted*100) / 100
}

// FormatPrice renders a price in its shortest decimal form, so 700.00 prints
// as "700" and 702.5 as "702.5".
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
