package journal

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/daybook-backend/internal/metric"
	"github.com/heartmarshall/daybook-backend/internal/model"
)

// EditValueResult is returned by EditValue.
type EditValueResult struct {
	Success bool
	// Value is the stored value after the change; nil when it was cleared.
	Value   metric.Value
	Summary *string
}

// EditValue applies one metric change to one post. The caller must own the
// journal both belong to.
func (s *Service) EditValue(ctx context.Context, input EditValueInput) (*EditValueResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ac, err := s.resolver(ctx).PostMetric(ctx, input.PostID, input.MetricID)
	if err != nil {
		return nil, err
	}
	editor, err := model.NewValueEditor(ac, s.store)
	if err != nil {
		return nil, err
	}

	res, err := editor.EditValue(ctx, input.Change)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "metric value edited",
		slog.String("post_id", input.PostID.String()),
		slog.String("metric_id", input.MetricID.String()),
		slog.Bool("deleted", res.Deleted),
	)

	return &EditValueResult{Success: true, Value: res.Value, Summary: res.Summary}, nil
}
