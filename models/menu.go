package models

// Category groups menu items on the menu page. Categories are seeded once and never modified.
type Category struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name        string  `json:"name" gorm:"not null"`
	Slug        string  `json:"slug" gorm:"uniqueIndex;not null"`
	BannerImage string  `json:"bannerImage" gorm:"not null"`
	Description *string `json:"description"`
}

type MenuItem struct {
	ID           int64   `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CategoryID   int64   `json:"categoryId" gorm:"not null;index"`
	Name         string  `json:"name" gorm:"not null"`
	Price        int     `json:"price" gorm:"not null;check:price >= 0"` // whole rupees
	Description  *string `json:"description"`
	ImageURL     string  `json:"imageUrl" gorm:"not null"`
	IsVeg        bool    `json:"isVeg" gorm:"not null"`
	IsBestseller bool    `json:"isBestseller" gorm:"not null"`
}
