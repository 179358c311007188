package service

import (
	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LogService interface {
	LogAction(userID primitive.ObjectID, action, description, ipAddress string, metadata map[string]interface{}) error
	GetAllLogs(page, limit int) ([]*models.ActivityLog, error)
	GetLogsByUserID(userID string, page, limit int) ([]*models.ActivityLog, error)
}

type logService struct {
	logRepo repository.ActivityLogRepository
}

func NewLogService(logRepo repository.ActivityLogRepository) LogService {
	return &logService{logRepo: logRepo}
}

func (s *logService) LogAction(userID primitive.ObjectID, action, description, ipAddress string, metadata map[string]interface{}) error {
	entry := &models.ActivityLog{
		UserID:      userID,
		Action:      action,
		Description: description,
		IPAddress:   ipAddress,
		Metadata:    metadata,
	}
	return s.logRepo.SaveLog(entry)
}

func (s *logService) GetAllLogs(page, limit int) ([]*models.ActivityLog, error) {
	return s.logRepo.GetAllLogs(page, limit)
}

func (s *logService) GetLogsByUserID(userID string, page, limit int) ([]*models.ActivityLog, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	return s.logRepo.GetLogsByUserID(objID, page, limit)
}
