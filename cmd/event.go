package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/expense-insights/internal/advisor"
	"github.com/frahmantamala/expense-insights/internal/core/events"
	"github.com/frahmantamala/expense-insights/pkg/logger"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event bus commands",
	Long:  `Inspect the in-process event bus and its handlers`,
}

var publishEventCmd = &cobra.Command{
	Use:   "publish-fallback [advisory]",
	Short: "Publish a test advisory fallback event",
	Long:  `Publish an advisory.fallback event through the handlers the server registers`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return publishTestEvent(args[0])
	},
}

var eventReason string

// newEventBus builds the bus with the handlers the server relies on.
func newEventBus(lg *slog.Logger) *events.EventBus {
	bus := events.NewEventBus(lg)
	bus.Subscribe(events.EventTypeAdvisoryFallback, func(ctx context.Context, event events.Event) error {
		fallback, ok := event.(*events.AdvisoryFallbackEvent)
		if !ok {
			return errors.New("unexpected payload for advisory.fallback")
		}
		logger.From(ctx).Info("advisory answered from fallback",
			"event_id", fallback.EventID(),
			"advisory", fallback.Advisory,
			"reason", fallback.Reason)
		return nil
	})
	return bus
}

func publishTestEvent(advisory string) error {
	switch advisory {
	case advisor.AdvisoryCategorize, advisor.AdvisorySummary, advisor.AdvisorySuggestions, advisor.AdvisoryPrediction:
	default:
		return errors.New("advisory must be one of categorize, summary, suggestions, prediction")
	}

	lg := logger.LoggerWrapper()
	bus := newEventBus(lg)

	event := events.NewAdvisoryFallbackEvent(advisory, errors.New(eventReason))
	lg.Info("publishing test event", "event_type", event.EventType(), "event_id", event.EventID())

	if err := bus.PublishSync(context.Background(), event); err != nil {
		return err
	}

	lg.Info("test event published successfully")
	return nil
}

func init() {
	publishEventCmd.Flags().StringVar(&eventReason, "reason", "manual test", "Failure reason recorded on the event")

	eventCmd.AddCommand(publishEventCmd)
}
