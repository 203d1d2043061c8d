package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Provider struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	UserImg     string             `bson:"userImg,omitempty" json:"user_img,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Rating      float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"created_at,omitempty"`
}

// BlogAuthor is the projection of a provider shown next to a blog post.
type BlogAuthor struct {
	Name    string `bson:"name" json:"name"`
	UserImg string `bson:"userImg,omitempty" json:"user_img,omitempty"`
}
