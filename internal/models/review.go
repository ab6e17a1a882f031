package models

import "time"

// Review ties a user's rating and comment to a product. The author and the
// subject are fixed at creation time; only comment and rating are mutable.
// Deleting a referenced user or product is rejected at the store.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	Comment   string    `json:"comment" validate:"omitempty,max=500"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Product Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// ReviewRequest is the create payload for a review.
type ReviewRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Comment   string `json:"comment" validate:"omitempty,max=500"`
	Rating    int    `json:"rating"`
}

// ReviewUpdateRequest carries the only fields a review allows to change.
type ReviewUpdateRequest struct {
	Comment string `json:"comment" validate:"omitempty,max=500"`
	Rating  int    `json:"rating"`
}

// ReviewListing is one row of the joined review report: the review plus the
// author's username and the reviewed product's name.
type ReviewListing struct {
	ReviewID  string    `json:"review_id"`
	Username  string    `json:"username"`
	Product   string    `json:"product"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
