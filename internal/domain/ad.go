package domain

import "time"

// Placeholder assets used when an advertiser publishes without images.
const (
	PlaceholderImage = "/placeholder.svg?height=400&width=600"
	PlaceholderLogo  = "/placeholder.svg?height=80&width=80"
)

// Ad is a company listing published on the directory wall.
type Ad struct {
	ID           string     `json:"id"`
	CompanyName  string     `json:"companyName"`
	Description  string     `json:"description"`
	Category     string     `json:"category"` // Category.Slug
	Country      string     `json:"country"`
	City         string     `json:"city"`
	Image        string     `json:"image"`
	Logo         string     `json:"logo,omitempty"`
	Phone        string     `json:"phone"`
	Whatsapp     string     `json:"whatsapp,omitempty"`
	Website      string     `json:"website,omitempty"`
	Email        string     `json:"email,omitempty"`
	OwnerEmail   string     `json:"ownerEmail,omitempty"`
	IsVip        bool       `json:"isVip"`
	VipExpiresAt *time.Time `json:"vipExpiresAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// CreateAdRequest is the validated input for publishing a listing.
type CreateAdRequest struct {
	CompanyName string `json:"companyName" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1"`
	Category    string `json:"category" validate:"required"`
	Country     string `json:"country" validate:"required"`
	City        string `json:"city" validate:"required"`
	Image       string `json:"image"`
	Logo        string `json:"logo"`
	Phone       string `json:"phone" validate:"required,max=30"`
	Whatsapp    string `json:"whatsapp" validate:"omitempty,max=30"`
	Website     string `json:"website" validate:"omitempty,max=200"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// UpdateAdRequest is the owner's edit of a listing. Nil fields are untouched.
type UpdateAdRequest struct {
	CompanyName *string `json:"companyName" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Category    *string `json:"category"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
	Image       *string `json:"image"`
	Logo        *string `json:"logo"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Whatsapp    *string `json:"whatsapp" validate:"omitempty,max=30"`
	Website     *string `json:"website" validate:"omitempty,max=200"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

// AdFilter narrows a listing query. Zero values mean "no constraint".
type AdFilter struct {
	Category string
	Country  string
	City     string
	VipOnly  bool
}
