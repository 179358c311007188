package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DocumentType string

const (
	DocumentProspectus         DocumentType = "prospectus"
	DocumentFinancialStatement DocumentType = "financial_statement"
	DocumentLegal              DocumentType = "legal_document"
	DocumentAnnouncement       DocumentType = "announcement"
	DocumentOther              DocumentType = "other"
)

type DocumentStatus string

const (
	DocumentDraft     DocumentStatus = "draft"
	DocumentPublished DocumentStatus = "published"
	DocumentArchived  DocumentStatus = "archived"
)

type Document struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Type       DocumentType       `json:"type" bson:"type"`
	FileName   string             `json:"file_name" bson:"file_name"`
	FileSize   int64              `json:"file_size" bson:"file_size"`
	FileType   string             `json:"file_type" bson:"file_type"`
	UploadDate time.Time          `json:"upload_date" bson:"upload_date"`
	UploadedBy string             `json:"uploaded_by" bson:"uploaded_by"`
	Status     DocumentStatus     `json:"status" bson:"status"`
	IPOID      primitive.ObjectID `json:"ipo_id,omitempty" bson:"ipo_id,omitempty"`
	Version    int                `json:"version" bson:"version"`
}
