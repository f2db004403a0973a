package models

import "math"

// Write inputs carry the validation rules in `binding` tags (gin's validator tag name).
// The `message` tag is the text reported when any rule on that field fails.

type ContactMessageInput struct {
	Name    string `json:"name" binding:"required" message:"Name is required"`
	Email   string `json:"email" binding:"required,email" message:"Invalid email address"`
	Phone   string `json:"phone" binding:"required,min=10" message:"Valid phone number is required"`
	Message string `json:"message" binding:"required" message:"Message is required"`
}

type ContactMessage struct {
	ID                  int64 `json:"id" gorm:"primaryKey"`
	ContactMessageInput `gorm:"embedded"`
}

type ReservationInput struct {
	FirstName string `json:"firstName" binding:"required" message:"First name is required"`
	LastName  string `json:"lastName" binding:"required" message:"Last name is required"`
	Email     string `json:"email" binding:"required,email" message:"Invalid email address"`
	Phone     string `json:"phone" binding:"required,min=10" message:"Valid phone number is required"`
	Address   string `json:"address" binding:"required" message:"Address is required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02" message:"Date is required"`
	Time      string `json:"time" binding:"required,clocktime" message:"Time is required"`
	Guests    int    `json:"guests" binding:"gte=1" message:"At least 1 guest required"`
}

type Reservation struct {
	ID               int64 `json:"id" gorm:"primaryKey"`
	ReservationInput `gorm:"embedded"`
}

type ReviewInput struct {
	Name     string `json:"name" binding:"required" message:"Name is required"`
	Rating   int    `json:"rating" binding:"required,gte=1,lte=5" message:"Rating must be between 1 and 5" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment  string `json:"comment" binding:"required" message:"Comment is required"`
	Location string `json:"location,omitempty"`
}

// Review is a stored review. ID and Date are assigned by storage, never by the client.
type Review struct {
	ID          int64 `json:"id" gorm:"primaryKey"`
	ReviewInput `gorm:"embedded"`
	Date        string `json:"date" gorm:"not null"`
}

// ReviewSummary aggregates ratings for the reviews page header.
type ReviewSummary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// SummarizeReviews averages ratings, rounded to one decimal place.
func SummarizeReviews(reviews []Review) ReviewSummary {
	if len(reviews) == 0 {
		return ReviewSummary{}
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	return ReviewSummary{Count: len(reviews), Average: math.Round(avg*10) / 10}
}
