package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ServiceProviderType string             `bson:"serviceProviderType" json:"service_provider_type"`
	Title               string             `bson:"title,omitempty" json:"title,omitempty"`
	Description         string             `bson:"description,omitempty" json:"description,omitempty"`
	Img                 string             `bson:"img,omitempty" json:"img,omitempty"`
}
