package frisbii

import (
	"fmt"
	"time"
)

// Fixed values used by the demo order.
const (
	DemoAmount   int64 = 10000 // 100.00 DKK
	DemoCurrency       = "DKK"
)

// NewOrderHandle derives an order handle from now. Millisecond resolution
// keeps repeated runs from colliding.
func NewOrderHandle(now time.Time) string {
	return fmt.Sprintf("order-%d", now.UnixMilli())
}

// DemoCustomer returns the fixed test customer.
func DemoCustomer() Customer {
	return Customer{
		Email:     "test.user@example.com",
		Handle:    "c-test",
		FirstName: "Test",
		LastName:  "User",
	}
}

// DemoOrder builds the demo order charged by the session creator.
func DemoOrder(now time.Time) Order {
	return Order{
		Handle:   NewOrderHandle(now),
		Amount:   DemoAmount,
		Currency: DemoCurrency,
		Settle:   true,
		Customer: DemoCustomer(),
	}
}
