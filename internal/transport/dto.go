package transport

import "time"

// Create requests mirror the insertable columns of each table. Optional
// columns with a database default are pointers so that "not sent" and
// "explicitly false/zero" stay distinguishable.

type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type PatchCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description *string  `json:"description"`
	CategoryID  *uint    `json:"category_id"`
	Images      []string `json:"images"`
	Active      *bool    `json:"active"`
	Featured    *bool    `json:"featured"`
}

type PatchProductRequest struct {
	Name        *string  `json:"name"`
	Slug        *string  `json:"slug"`
	Description *string  `json:"description"`
	CategoryID  *uint    `json:"category_id"`
	Images      []string `json:"images"`
	Active      *bool    `json:"active"`
	Featured    *bool    `json:"featured"`
}

type CreateOrderRequest struct {
	CustomerName  string     `json:"customer_name"`
	CustomerEmail *string    `json:"customer_email"`
	CustomerPhone *string    `json:"customer_phone"`
	ProductID     *uint      `json:"product_id"`
	Status        *string    `json:"status"`
	Notes         *string    `json:"notes"`
	DueDate       *time.Time `json:"due_date"`
}

type PatchOrderRequest struct {
	CustomerName  *string    `json:"customer_name"`
	CustomerEmail *string    `json:"customer_email"`
	CustomerPhone *string    `json:"customer_phone"`
	ProductID     *uint      `json:"product_id"`
	Status        *string    `json:"status"`
	Notes         *string    `json:"notes"`
	DueDate       *time.Time `json:"due_date"`
}

type UpsertPageContentRequest struct {
	PageKey string  `json:"page_key"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type CreateFaqItemRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    *int   `json:"order"`
	Active   *bool  `json:"active"`
}

type PatchFaqItemRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Order    *int    `json:"order"`
	Active   *bool   `json:"active"`
}
