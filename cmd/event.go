package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/manager-dashboard/internal/core/events"
	"github.com/frahmantamala/manager-dashboard/pkg/logger"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event bus commands",
	Long:  `Publish worker lifecycle events through the bus and its audit handler`,
}

var publishEventCmd = &cobra.Command{
	Use:       "publish [added|status_changed|deleted]",
	Short:     "Publish a sample worker event",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"added", "status_changed", "deleted"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return publishTestEvent(args[0])
	},
}

var (
	eventWorkerID int64
	eventStatus   string
)

func sampleEvent(kind string) (events.Event, error) {
	switch kind {
	case "added":
		return events.NewWorkerAddedEvent(eventWorkerID, "Sample Worker", "Driver", eventStatus), nil
	case "status_changed":
		return events.NewWorkerStatusChangedEvent(eventWorkerID, "Pending", eventStatus), nil
	case "deleted":
		return events.NewWorkerDeletedEvent(eventWorkerID, eventStatus), nil
	default:
		return nil, fmt.Errorf("unknown event kind %q", kind)
	}
}

func publishTestEvent(kind string) error {
	lg := logger.LoggerWrapper()

	event, err := sampleEvent(kind)
	if err != nil {
		return err
	}

	bus := events.NewEventBus(lg)
	bus.Subscribe(events.Wildcard, events.AuditHandler())

	lg.Info("publishing test event", "event_type", event.EventType(), "event_id", event.EventID())
	if err := bus.PublishSync(context.Background(), event); err != nil {
		return err
	}
	lg.Info("test event published successfully")
	return nil
}

func init() {
	publishEventCmd.Flags().Int64Var(&eventWorkerID, "worker-id", 1, "worker id carried by the event")
	publishEventCmd.Flags().StringVar(&eventStatus, "status", "Active", "worker status carried by the event")

	eventCmd.AddCommand(publishEventCmd)
	rootCmd.AddCommand(eventCmd)
}
