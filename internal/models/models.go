package models

import (
	"time"

	"github.com/lib/pq"
)

// Order statuses. The column itself is free text, these are the values the
// admin dashboard and the order workflow understand.
const (
	OrderStatusPending      = "pending"
	OrderStatusInProduction = "in_production"
	OrderStatusCompleted    = "completed"
	OrderStatusCancelled    = "cancelled"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null"     json:"username"`
	Password  string    `gorm:"not null"                 json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime"           json:"created_at"`
}

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null"     json:"slug"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `gorm:"autoCreateTime"           json:"created_at"`

	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"-"`
}

// Product.Images maps the text[] column; the first element is the canonical
// display image.
type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null"                 json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null"     json:"slug"`
	Description string         `json:"description"`
	CategoryID  *uint          `gorm:"index"                    json:"category_id"`
	Images      pq.StringArray `gorm:"type:text[]"              json:"images"`
	Active      bool           `json:"active"`
	Featured    bool           `json:"featured"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"           json:"created_at"`

	Orders []Order `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"-"`
}

type Order struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName  string     `gorm:"not null"                 json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerPhone string     `json:"customer_phone"`
	ProductID     *uint      `gorm:"index"                    json:"product_id"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
	DueDate       *time.Time `json:"due_date"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"           json:"created_at"`
}

type PageContent struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PageKey   string    `gorm:"uniqueIndex;not null"     json:"page_key"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"           json:"updated_at"`
}

type FaqItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Question  string    `gorm:"not null"                 json:"question"`
	Answer    string    `gorm:"not null"                 json:"answer"`
	Order     int       `gorm:"column:order"             json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime"           json:"created_at"`
}
