package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID        string    `json:"id" bson:"_id,omitempty" gorm:"primaryKey"`
	Username  string    `json:"username" bson:"username" gorm:"uniqueIndex"`
	Password  string    `json:"-" bson:"password"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"-" bson:"created_at"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
