package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Profile struct {
	ID                 string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email              string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	DisplayName        string    `gorm:"type:varchar(120)" json:"display_name"`
	Plan               string    `gorm:"type:varchar(20);default:'free'" json:"plan"`
	StripeAccountID    string    `gorm:"type:varchar(64)" json:"stripe_account_id"`
	StripeOnboarded    bool      `gorm:"default:false" json:"stripe_onboarded"`
	PayPalEmail        string    `gorm:"column:paypal_email;type:varchar(255)" json:"paypal_email"`
	PayPalEnabled      bool      `gorm:"column:paypal_enabled;default:false" json:"paypal_enabled"`
	MercadoPagoEnabled bool      `gorm:"column:mercadopago_enabled;default:false" json:"mercadopago_enabled"`
	ManualTransferIBAN string    `gorm:"column:manual_transfer_iban;type:varchar(34)" json:"manual_transfer_iban"`
	ReferredBy         string    `gorm:"type:varchar(36);index" json:"referred_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

type Shop struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProfileID string    `gorm:"type:varchar(36);not null;index" json:"profile_id"`
	Slug      string    `gorm:"type:varchar(80);not null;uniqueIndex" json:"slug"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	Currency  string    `gorm:"type:char(3);default:'EUR'" json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Shop) TableName() string {
	return "shops"
}

type Product struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ShopID      string          `gorm:"type:varchar(36);not null;index" json:"shop_id"`
	FormID      *string         `gorm:"type:varchar(36)" json:"form_id"`
	Name        string          `gorm:"type:varchar(160);not null" json:"name"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_price"`
	IsAvailable bool            `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

type Form struct {
	ID           string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ShopID       string      `gorm:"type:varchar(36);not null;index" json:"shop_id"`
	IsCustomForm bool        `gorm:"default:false" json:"is_custom_form"`
	Fields       []FormField `gorm:"foreignKey:FormID" json:"fields"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (Form) TableName() string {
	return "forms"
}

type FormField struct {
	ID       string            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FormID   string            `gorm:"type:varchar(36);not null;index" json:"form_id"`
	Label    string            `gorm:"type:varchar(160);not null" json:"label"`
	Type     string            `gorm:"type:varchar(20);not null" json:"type"`
	Required bool              `gorm:"default:false" json:"required"`
	Position int               `gorm:"default:0" json:"position"`
	Options  []FormFieldOption `gorm:"foreignKey:FieldID" json:"options"`
}

func (FormField) TableName() string {
	return "form_fields"
}

type FormFieldOption struct {
	ID       uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	FieldID  string          `gorm:"type:varchar(36);not null;index" json:"field_id"`
	Label    string          `gorm:"type:varchar(160);not null" json:"label"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`
	Position int             `gorm:"default:0" json:"position"`
}

func (FormFieldOption) TableName() string {
	return "form_field_options"
}

type PushSubscription struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProfileID string    `gorm:"type:varchar(36);not null;index" json:"profile_id"`
	Endpoint  string    `gorm:"type:text;not null" json:"endpoint"`
	P256dh    string    `gorm:"type:varchar(255);not null" json:"p256dh"`
	Auth      string    `gorm:"type:varchar(255);not null" json:"auth"`
	CreatedAt time.Time `json:"created_at"`
}

func (PushSubscription) TableName() string {
	return "push_subscriptions"
}

// All lists the catalog models for AutoMigrate.
func All() []any {
	return []any{&Profile{}, &Shop{}, &Product{}, &Form{}, &FormField{}, &FormFieldOption{}, &PushSubscription{}}
}
