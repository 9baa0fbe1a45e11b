package email

import (
	"fmt"
	"strings"
	"time"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/money"
)

// Template names, one file each under templates/.
const (
	TemplateOrderConfirmation = "order_confirmation"
	TemplateOrderStatus       = "order_status"
)

// OrderLine is one line of an order confirmation.
type OrderLine struct {
	Name      string
	Quantity  int32
	UnitPrice money.Cents
	LineTotal money.Cents
}

// OrderConfirmationEmail is the data for the order confirmation template.
type OrderConfirmationEmail struct {
	OrderID      string
	CustomerName string
	Email        string
	Items        []OrderLine
	Subtotal     money.Cents
	Discount     money.Cents
	Tax          money.Cents
	DeliveryFee  money.Cents
	Total        money.Cents
	VoucherCode  string
	Address      string
	OrderDate    string
}

// ShortID is the first block of the order id, used in subjects.
func (e OrderConfirmationEmail) ShortID() string { return shortID(e.OrderID) }

// OrderStatusEmail is the data for the status change template.
type OrderStatusEmail struct {
	OrderID      string
	CustomerName string
	Email        string
	Status       domain.OrderStatus
	Location     string
	Total        money.Cents
}

// ShortID is the first block of the order id, used in subjects.
func (e OrderStatusEmail) ShortID() string { return shortID(e.OrderID) }

// StatusLabel renders the status for people, e.g. "out for delivery".
func (e OrderStatusEmail) StatusLabel() string {
	return strings.ToLower(strings.ReplaceAll(string(e.Status), "_", " "))
}

// NewOrderConfirmation builds confirmation data from a stored order.
func NewOrderConfirmation(o *domain.Order, customer domain.OrderCustomer) OrderConfirmationEmail {
	lines := make([]OrderLine, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, OrderLine{
			Name:      it.DishName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}
	return OrderConfirmationEmail{
		OrderID:      o.ID.String(),
		CustomerName: customerName(customer),
		Email:        customer.Email,
		Items:        lines,
		Subtotal:     o.Subtotal,
		Discount:     o.Discount,
		Tax:          o.Tax,
		DeliveryFee:  o.DeliveryFee,
		Total:        o.Total,
		VoucherCode:  o.VoucherCode,
		Address:      o.Address,
		OrderDate:    o.CreatedAt.UTC().Format(time.RFC1123),
	}
}

// NewOrderStatus builds status change data from a stored order.
func NewOrderStatus(o *domain.Order, customer domain.OrderCustomer) OrderStatusEmail {
	return OrderStatusEmail{
		OrderID:      o.ID.String(),
		CustomerName: customerName(customer),
		Email:        customer.Email,
		Status:       o.Status,
		Location:     o.CurrentLocation,
		Total:        o.Total,
	}
}

func customerName(c domain.OrderCustomer) string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		return "there"
	}
	return name
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return "#" + strings.ToUpper(id[:i])
	}
	return "#" + id
}

func confirmationSubject(e OrderConfirmationEmail) string {
	return fmt.Sprintf("Your order %s is confirmed", e.ShortID())
}

func statusSubject(e OrderStatusEmail) string {
	return fmt.Sprintf("Your order %s is %s", e.ShortID(), e.StatusLabel())
}
