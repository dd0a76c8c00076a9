package journal

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/model"
)

// MetricHistory returns the values a metric took across its journal's posts.
func (s *Service) MetricHistory(ctx context.Context, metricID uuid.UUID) (*model.History, error) {
	ac, err := s.resolver(ctx).Metric(ctx, metricID)
	if err != nil {
		return nil, err
	}
	reader, err := model.NewMetricReader(ac, s.store)
	if err != nil {
		return nil, err
	}
	return reader.History(ctx)
}
