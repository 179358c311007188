package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleClient     UserRole = "client"
	RoleBrokerage  UserRole = "brokerage"
	RoleITAdmin    UserRole = "it_admin"
	RoleViewer     UserRole = "viewer"
	RoleAnalyst    UserRole = "analyst"
	RoleSuperAdmin UserRole = "super_admin"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusPending   UserStatus = "pending"
)

type KYCStatus string

const (
	KYCNotStarted KYCStatus = "not_started"
	KYCPending    KYCStatus = "pending"
	KYCVerified   KYCStatus = "verified"
	KYCRejected   KYCStatus = "rejected"
)

type User struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FullName         string             `json:"full_name" bson:"full_name"`
	Email            string             `json:"email" bson:"email"`
	Password         string             `json:"-" bson:"password"`
	Role             UserRole           `json:"role" bson:"role"`
	Company          string             `json:"company,omitempty" bson:"company,omitempty"`
	Status           UserStatus         `json:"status" bson:"status"`
	Balance          float64            `json:"balance" bson:"balance"`
	KYCStatus        KYCStatus          `json:"kyc_status" bson:"kyc_status"`
	KYCVerifiedAt    string             `json:"kyc_verified_at,omitempty" bson:"kyc_verified_at,omitempty"`
	RegistrationDate string             `json:"registration_date" bson:"registration_date"`
	LastLogin        string             `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedBy        string             `json:"created_by" bson:"created_by"`
}
