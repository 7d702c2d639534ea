package utils

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/linskybing/freelance-market/internal/domain/audit"
	"github.com/linskybing/freelance-market/internal/repository"
)

const auditWriteTimeout = 5 * time.Second

// LogAuditWithConsole writes the audit entry in the background and only logs
// failures. The request context is detached so the write survives the response.
var LogAuditWithConsole = func(ctx context.Context, actor audit.Actor, action, resourceType, resourceID string, oldData, newData any, msg string, repo repository.AuditRepo) {
	bg := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(bg, auditWriteTimeout)
		defer cancel()
		if err := LogAudit(ctx, actor, action, resourceType, resourceID, oldData, newData, msg, repo); err != nil {
			slog.Error("audit log write failed", "action", action, "resource", resourceType, "resourceId", resourceID, "error", err)
		}
	}()
}

var LogAudit = func(
	ctx context.Context,
	actor audit.Actor,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repo repository.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			slog.Warn("audit marshal old data", "error", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			slog.Warn("audit marshal new data", "error", err)
		}
	}

	entry := &audit.AuditLog{
		UserID:       actor.UserID,
		UserRole:     actor.Role,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    actor.IP,
		UserAgent:    actor.UserAgent,
		Description:  description,
	}

	return repo.CreateAuditLog(ctx, entry)
}
