package service

import (
	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DocumentService interface {
	CreateDocument(doc *models.Document) error
	GetDocument(id string) (*models.Document, error)
	GetAllDocuments() ([]*models.Document, error)
	GetDocumentsByIPO(ipoID string) ([]*models.Document, error)
	SetStatus(id string, status models.DocumentStatus) error
	DeleteDocument(id string) error
}

type documentService struct {
	documentRepo repository.DocumentRepository
}

func NewDocumentService(documentRepo repository.DocumentRepository) DocumentService {
	return &documentService{documentRepo: documentRepo}
}

func (s *documentService) CreateDocument(doc *models.Document) error {
	if doc.Status == "" {
		doc.Status = models.DocumentDraft
	}
	return s.documentRepo.SaveDocument(doc)
}

func (s *documentService) GetDocument(id string) (*models.Document, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.documentRepo.GetDocumentByID(objID)
}

func (s *documentService) GetAllDocuments() ([]*models.Document, error) {
	return s.documentRepo.GetAllDocuments()
}

func (s *documentService) GetDocumentsByIPO(ipoID string) ([]*models.Document, error) {
	objID, err := primitive.ObjectIDFromHex(ipoID)
	if err != nil {
		return nil, err
	}
	return s.documentRepo.GetDocumentsByIPO(objID)
}

func (s *documentService) SetStatus(id string, status models.DocumentStatus) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return s.documentRepo.UpdateStatus(objID, status)
}

func (s *documentService) DeleteDocument(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return s.documentRepo.DeleteDocument(objID)
}
