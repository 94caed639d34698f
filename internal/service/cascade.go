package service

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/repository"
	"course_backend/internal/util"
	"course_backend/pkg/logger"
	"course_backend/pkg/monitoring"
	"course_backend/pkg/tracing"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Deleter 由 repository.CascadeRepository 实现
type Deleter interface {
	SoftDelete(ctx context.Context, kind repository.ParentKind, parentID uint) error
}

func cascadeDelete(ctx context.Context, d Deleter, p model.Principal, kind repository.ParentKind, id uint) error {
	ctx, span := tracing.StartSpan(ctx, "cascade.soft_delete")
	defer span.End()
	span.SetAttributes(attribute.String("parent.kind", kind.String()), attribute.Int64("parent.id", int64(id)))

	err := d.SoftDelete(ctx, kind, id)
	switch {
	case err == nil:
		monitoring.CascadeDeletes.WithLabelValues(kind.String(), "ok").Inc()
		logger.Log.Info("Soft delete cascaded",
			zap.String("kind", kind.String()),
			zap.Uint("id", id),
			zap.Uint("teacherId", p.ID),
		)
	case errors.Is(err, util.ErrNotFound):
		monitoring.CascadeDeletes.WithLabelValues(kind.String(), "not_found").Inc()
	default:
		monitoring.CascadeDeletes.WithLabelValues(kind.String(), "error").Inc()
		span.RecordError(err)
	}
	return err
}

func requireTeacher(p model.Principal) error {
	if !p.IsTeacher() {
		return util.ErrPermissionDenied
	}
	return nil
}

func requireUser(p model.Principal) error {
	if p.Kind != model.KindUser {
		return util.ErrPermissionDenied
	}
	return nil
}
