package domain

import "time"

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Images    []string  `json:"images,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ReviewImage struct {
	Name string
	Data []byte
}

// ReviewInput is the form a shopper submits. Images are uploaded with it.
type ReviewInput struct {
	Rating  int
	Comment string
	Images  []ReviewImage
}

// ReviewSummary is what a product page shows: all reviews and the average
// rating computed by the server.
type ReviewSummary struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
	ReviewCount   int      `json:"reviewCount"`
}
