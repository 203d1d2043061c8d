package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	AuthorEmail string             `bson:"authorEmail" json:"author_email"`
	Img         string             `bson:"img,omitempty" json:"img,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Time        string             `bson:"time" json:"time"`
	Date        string             `bson:"date" json:"date"`
	TotalView   int                `bson:"totalView" json:"total_view"`
	Rating      float64            `bson:"rating" json:"rating"`
	TotalRating int                `bson:"totalRating" json:"total_rating"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
}
