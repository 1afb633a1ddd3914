package domain

import "time"

// Reputation - агрегированная репутация продавца
type Reputation struct {
	SellerID     string
	Score        float64 // 0..5
	ReviewsCount int
}

// Feedback - один отзыв о продавце
type Feedback struct {
	ID        string
	AuthorID  string
	Comment   string
	Rating    int
	CreatedAt *time.Time
}

// SellerProfile - результат составной загрузки "репутация + отзывы"
type SellerProfile struct {
	Reputation Reputation
	Feedbacks  []Feedback
}
