package domain

// Category is a directory section listings are filed under.
type Category struct {
	Slug   string `json:"slug"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
	Image  string `json:"image"`
	Color  string `json:"color"` // card accent, set by the admin
}

// CreateCategoryRequest is the validated admin input for adding a category.
type CreateCategoryRequest struct {
	Slug   string `json:"slug" validate:"required,min=1,max=60"`
	NameAr string `json:"nameAr" validate:"required"`
	NameEn string `json:"nameEn" validate:"required"`
	Image  string `json:"image"`
	Color  string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateCategoryColorRequest changes a category's card color.
type UpdateCategoryColorRequest struct {
	Color string `json:"color" validate:"required,hexcolor"`
}
