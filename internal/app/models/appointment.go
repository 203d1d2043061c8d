package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentStatusUnpaid    AppointmentStatus = "unpaid"
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusPaid      AppointmentStatus = "paid"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusFailed    AppointmentStatus = "failed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is the active booking document. PaymentID, CustomerEmail and
// PendingAt are set together when a payment session reserves the appointment.
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	Email           string             `bson:"email" json:"email"`
	ServiceName     string             `bson:"serviceName,omitempty" json:"service_name,omitempty"`
	ServiceCategory string             `bson:"serviceCategory,omitempty" json:"service_category,omitempty"`
	Date            string             `bson:"date,omitempty" json:"date,omitempty"`
	Time            string             `bson:"time,omitempty" json:"time,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	Status          AppointmentStatus  `bson:"status" json:"status"`
	ProviderEmail   string             `bson:"providerEmail,omitempty" json:"provider_email,omitempty"`
	UserMeetingLink string             `bson:"userMeetingLink,omitempty" json:"user_meeting_link,omitempty"`
	PaymentID       string             `bson:"paymentId,omitempty" json:"payment_id,omitempty"`
	CustomerEmail   string             `bson:"customerEmail,omitempty" json:"customer_email,omitempty"`
	PendingAt       *time.Time         `bson:"pendingAt,omitempty" json:"pending_at,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"created_at"`
}

// AppointmentHistory is the archived copy written by the completion flow
// before the active document is removed.
type AppointmentHistory struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AppointmentID   primitive.ObjectID `bson:"appointmentId" json:"appointment_id"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	Email           string             `bson:"email" json:"email"`
	ServiceName     string             `bson:"serviceName,omitempty" json:"service_name,omitempty"`
	ServiceCategory string             `bson:"serviceCategory,omitempty" json:"service_category,omitempty"`
	Date            string             `bson:"date,omitempty" json:"date,omitempty"`
	Time            string             `bson:"time,omitempty" json:"time,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	ProviderEmail   string             `bson:"providerEmail,omitempty" json:"provider_email,omitempty"`
	PaymentID       string             `bson:"paymentId,omitempty" json:"payment_id,omitempty"`
	CustomerEmail   string             `bson:"customerEmail,omitempty" json:"customer_email,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"created_at"`
	CompletedAt     time.Time          `bson:"completedAt" json:"completed_at"`
}
