package entities

type ShippingMethod string

const (
	ShippingHome    ShippingMethod = "HOME"
	ShippingPickup  ShippingMethod = "PICKUP"
	ShippingCourier ShippingMethod = "COURIER"
)

func (m ShippingMethod) Valid() bool {
	switch m {
	case ShippingHome, ShippingPickup, ShippingCourier:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "COD"
	PaymentCard PaymentMethod = "CARD"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCOD || p == PaymentCard
}

// CartLine is a read-only snapshot of one cart line. Prices are in minor units.
type CartLine struct {
	ProductID  int64
	ProducerID int64
	Name       string
	UnitPrice  int64
	Quantity   int
}

func (l CartLine) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

func Subtotal(lines []CartLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.Total()
	}
	return sum
}

// Customer is the payer handed to the hosted payment session.
type Customer struct {
	Name  string
	Phone string
	Email string
}

type Address struct {
	Name       string
	Phone      string
	Line1      string
	City       string
	PostalCode string
	Country    string
}

func (a Address) Customer() Customer {
	return Customer{Name: a.Name, Phone: a.Phone}
}
