package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JSONMap stores loosely structured metadata (gateway responses) as jsonb.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(JSONMap{})
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value any) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, m)
}

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var statusLabels = map[string]string{
	StatusPending:   "Pending",
	StatusConfirmed: "Confirmed",
	StatusShipped:   "Shipped",
	StatusDelivered: "Delivered",
	StatusCancelled: "Cancelled",
}

func ValidStatus(s string) bool {
	_, ok := statusLabels[s]
	return ok
}

// StatusLabel returns the display form of a status, falling back to the raw
// value for anything unknown.
func StatusLabel(s string) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return s
}

// Governorates is the fixed set of shipping destinations.
var Governorates = []string{
	"Cairo", "Giza", "Alexandria", "Dakahlia", "Red Sea", "Beheira",
	"Fayoum", "Gharbia", "Ismailia", "Monufia", "Minya", "Qalyubia",
	"New Valley", "Suez", "Aswan", "Assiut", "Beni Suef", "Port Said",
	"Damietta", "Sharkia", "South Sinai", "Kafr El Sheikh", "Matrouh",
	"Luxor", "Qena", "North Sinai", "Sohag",
}

func ValidGovernorate(city string) bool {
	for _, g := range Governorates {
		if g == city {
			return true
		}
	}
	return false
}

// Order is a materialized checkout. The tracking id is the only
// customer-facing identifier; it is random so orders cannot be enumerated.
// Shipping, discount and total are snapshots persisted at checkout time.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"-"`
	TrackingID  uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"tracking_id"`
	FullName    string          `gorm:"size:150;not null" json:"full_name"`
	Email       string          `gorm:"size:254;not null" json:"email"`
	PhoneNumber string          `gorm:"size:20" json:"phone_number"`
	Address     string          `gorm:"type:text" json:"address"`
	City        string          `gorm:"size:100" json:"city"`

	ShippingPrice  decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"shipping_price"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"discount_amount"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total_price"`

	Status          string  `gorm:"size:20;default:pending" json:"status"`
	IsPaid          bool    `gorm:"default:false" json:"is_paid"`
	PaymentMetadata JSONMap `gorm:"type:jsonb" json:"payment_metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items   []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Invoice *Invoice    `gorm:"constraint:OnDelete:CASCADE" json:"invoice,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.TrackingID == uuid.Nil {
		o.TrackingID = uuid.New()
	}
	return nil
}

// Subtotal is the sum of line costs, before shipping and discount.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Cost())
	}
	return total
}

// PaymentMethod pulls the payment method out of the gateway metadata blob,
// defaulting to N/A while payment capture stays stubbed.
func (o *Order) PaymentMethod() string {
	if method, ok := o.PaymentMetadata["payment_method"].(string); ok && method != "" {
		return strings.ToUpper(method)
	}
	return "N/A"
}

// OrderItem is one purchased line. The variant reference is nulled when the
// variant is deleted from the catalog so order history survives; the price is
// a snapshot taken at purchase time.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	OrderID   uint            `gorm:"not null;index" json:"-"`
	VariantID *uint           `gorm:"index" json:"variant_id"`
	Variant   *ProductVariant `gorm:"constraint:OnDelete:SET NULL" json:"variant,omitempty"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
}

func (i *OrderItem) Cost() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Invoice is a placeholder for generated invoice files, one per order.
type Invoice struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	OrderID   uint      `gorm:"uniqueIndex;not null" json:"-"`
	PDFPath   string    `gorm:"size:300" json:"pdf_path"`
	CreatedAt time.Time `json:"created_at"`
}
