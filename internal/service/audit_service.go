package service

import (
	"context"
	"encoding/json"

	"warehouse/internal/model"
	"warehouse/internal/repository"
	"warehouse/pkg/apperror"
	"warehouse/pkg/pagination"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

// AuditEntry is one action to record; Details is stored as JSON
type AuditEntry struct {
	UserID     *uuid.UUID
	Action     string
	EntityID   string
	EntityName string
	Details    interface{}
}

// AuditLogQuery filters the audit trail listing
type AuditLogQuery struct {
	EntityID string `form:"entity_id"`
	Action   string `form:"action"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type AuditService interface {
	// Record writes an entry using the transaction carried by ctx, if any
	Record(ctx context.Context, entry AuditEntry) error
	GetAuditLogs(ctx context.Context, q AuditLogQuery) ([]AuditLogResponse, pagination.Meta, error)
}

type auditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, entry AuditEntry) error {
	details := ""
	if entry.Details != nil {
		raw, err := json.Marshal(entry.Details)
		if err != nil {
			return apperror.Internal(err)
		}
		details = string(raw)
	}

	return s.repo.Log(ctx, &model.AuditLog{
		UserID:     entry.UserID,
		Action:     entry.Action,
		EntityID:   entry.EntityID,
		EntityName: entry.EntityName,
		Details:    details,
	})
}

// GetAuditLogs retrieves paginated records, newest first, with users preloaded
func (s *auditService) GetAuditLogs(ctx context.Context, q AuditLogQuery) ([]AuditLogResponse, pagination.Meta, error) {
	page := pagination.New(q.Page, q.Limit)

	logs, total, err := s.repo.List(ctx, repository.AuditFilter{
		EntityID: q.EntityID,
		Action:   q.Action,
		Offset:   page.Offset,
		Limit:    page.Limit,
	})
	if err != nil {
		return nil, pagination.Meta{}, apperror.Database("Failed to retrieve audit logs", err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		username := "System"
		userID := ""
		if l.User != nil {
			username = l.User.Username
		}
		if l.UserID != nil {
			userID = l.UserID.String()
		}

		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			UserID:     userID,
			Username:   username,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, pagination.NewMeta(page.Page, page.Limit, total), nil
}
