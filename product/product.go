// Package product defines the ordered record type used by the catalog
// exercises.
package product

import (
	"cmp"
	"fmt"

	"github.com/Anstapen/LearnSTL/order"
)

// Product is a plain value record with a total order over all fields.
type Product struct {
	Name         string
	Price        float64
	FreeDelivery bool
}

func New(name string, price float64, freeDelivery bool) Product {
	return Product{Name: name, Price: price, FreeDelivery: freeDelivery}
}

// Compare orders products field by field: name, then price, then
// delivery (paid sorts before free).
func (p Product) Compare(o Product) order.Ordering {
	if c := cmp.Compare(p.Name, o.Name); c != 0 {
		return order.FromInt(c)
	}
	if c := cmp.Compare(p.Price, o.Price); c != 0 {
		return order.FromInt(c)
	}
	return order.FromInt(boolToInt(p.FreeDelivery) - boolToInt(o.FreeDelivery))
}

func (p Product) Less(o Product) bool { return p.Compare(o) == order.Less }

// ByPrice is the comparator for price-sorted catalogs.
func ByPrice(a, b Product) int {
	return cmp.Compare(a.Price, b.Price)
}

func (p Product) String() string {
	shipping := "not free"
	if p.FreeDelivery {
		shipping = "free"
	}
	return fmt.Sprintf("Name:%s\t Price:%v\t Shipping:%s", p.Name, p.Price, shipping)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
