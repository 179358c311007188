package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type KYCReviewStatus string

const (
	KYCReviewPending  KYCReviewStatus = "pending"
	KYCReviewApproved KYCReviewStatus = "approved"
	KYCReviewRejected KYCReviewStatus = "rejected"
)

type KYCSubmission struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	UserName    string             `json:"user_name" bson:"user_name"`
	UserEmail   string             `json:"user_email" bson:"user_email"`
	Status      KYCReviewStatus    `json:"status" bson:"status"`
	SubmittedAt time.Time          `json:"submitted_at" bson:"submitted_at"`
	ReviewedAt  *time.Time         `json:"reviewed_at,omitempty" bson:"reviewed_at,omitempty"`
	ReviewedBy  string             `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	Documents   []string           `json:"documents" bson:"documents"`
	Comment     string             `json:"comment,omitempty" bson:"comment,omitempty"`
}
