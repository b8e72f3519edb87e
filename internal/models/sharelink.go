package models

// ShareLink maps a user to their public share hash. At most one link exists
// per user, enforced by a unique constraint on UserID at the store layer.
type ShareLink struct {
	ID     string `json:"id" bson:"_id,omitempty" gorm:"primaryKey"`
	Hash   string `json:"hash" bson:"hash" gorm:"index"`
	UserID string `json:"userId" bson:"user_id" gorm:"uniqueIndex"`
}

type ShareRequest struct {
	Share bool `json:"share"`
}
