package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"acadplan_backend/internal/model"
	"acadplan_backend/internal/repository"
	"acadplan_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EvidenceService struct {
	EvidenceRepo *repository.EvidenceRepository
	Storage      *StorageService
}

func NewEvidenceService(evidenceRepo *repository.EvidenceRepository, storage *StorageService) *EvidenceService {
	return &EvidenceService{
		EvidenceRepo: evidenceRepo,
		Storage:      storage,
	}
}

// Create stores the backing file (when present) and persists the record.
func (s *EvidenceService) Create(ctx context.Context, evidence *model.Evidence, file *multipart.FileHeader) error {
	if evidence.Cycle == "" {
		evidence.Cycle = CurrentCycle(time.Now())
	}
	if evidence.Status == "" {
		evidence.Status = model.EvidencePending
	}

	if file != nil {
		url, err := s.uploadFile(ctx, file)
		if err != nil {
			return err
		}
		evidence.FileURL = url
	}

	return s.EvidenceRepo.Create(evidence)
}

func (s *EvidenceService) uploadFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, e := range util.AllowedEvidenceExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", util.ErrUnsupportedFileType
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := "evidence/" + uuid.New().String() + ext
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	return s.Storage.Upload(ctx, filename, src, file.Size, contentType)
}

func (s *EvidenceService) List(cycle, teacher string) ([]model.Evidence, error) {
	return s.EvidenceRepo.FindScoped(cycle, teacher)
}

// Validate is the coordinator's accept/reject action over an evidence record.
func (s *EvidenceService) Validate(id uint, status model.EvidenceStatus) (*model.Evidence, error) {
	if status != model.EvidenceValidated && status != model.EvidenceRejected {
		return nil, fmt.Errorf("evidence status must be validated or rejected")
	}

	if _, err := s.EvidenceRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrEvidenceNotFound
		}
		return nil, err
	}

	if err := s.EvidenceRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.EvidenceRepo.FindByID(id)
}
