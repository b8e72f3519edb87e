package models

import "time"

// Content is a saved link owned by a user. The content type (video, tweet,
// article, ...) is derived client-side from the link, it is not stored.
type Content struct {
	ID        string    `json:"id" bson:"_id,omitempty" gorm:"primaryKey"`
	Title     string    `json:"title" bson:"title"`
	Link      string    `json:"link" bson:"link"`
	UserID    string    `json:"userId" bson:"user_id" gorm:"index"`
	CreatedAt time.Time `json:"-" bson:"created_at"`
}

type CreateContentRequest struct {
	Title string `json:"title" validate:"required"`
	Link  string `json:"link" validate:"required"`
}

type DeleteContentRequest struct {
	ContentID string `json:"contentId" validate:"required"`
}
