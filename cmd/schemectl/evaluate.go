package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/netscheme-backend/internal/app"
	"github.com/heartmarshall/netscheme-backend/internal/domain"
	"github.com/heartmarshall/netscheme-backend/internal/service/alerting"
	"github.com/heartmarshall/netscheme-backend/internal/transport/dto"
)

type evaluateFlags struct {
	entityType string
	entityID   string
	metric     string
	value      float64
}

func (f evaluateFlags) input() (alerting.EvaluateInput, error) {
	in := alerting.EvaluateInput{
		EntityType: domain.EntityType(f.entityType),
		Metric:     f.metric,
		Value:      f.value,
	}
	if f.entityID != "" {
		id, err := uuid.Parse(f.entityID)
		if err != nil {
			return in, fmt.Errorf("--entity-id: %w", err)
		}
		in.EntityID = &id
	}
	return in, in.Validate()
}

// newEvaluateCmd feeds a single metric reading through the alerting engine,
// the same way a monitoring agent would over the API.
func newEvaluateCmd(e *env) *cobra.Command {
	var f evaluateFlags

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a metric value against active thresholds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := f.input()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := e.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			svcs := app.NewServices(e.cfg, e.logger, pool, nil)
			res, err := svcs.Alerting.Evaluate(ctx, in)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), map[string]any{
				"opened":   dto.Map(res.Opened, dto.FromAlert),
				"resolved": dto.Map(res.Resolved, dto.FromAlert),
			})
		},
	}

	cmd.Flags().StringVar(&f.entityType, "entity-type", string(domain.EntityTypeConnection), "entity type the metric belongs to")
	cmd.Flags().StringVar(&f.entityID, "entity-id", "", "entity the reading is for (optional)")
	cmd.Flags().StringVar(&f.metric, "metric", "", "metric name")
	cmd.Flags().Float64Var(&f.value, "value", 0, "observed value")
	_ = cmd.MarkFlagRequired("metric")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
