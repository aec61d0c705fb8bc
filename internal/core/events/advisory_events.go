package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeAdvisoryFallback = "advisory.fallback"
)

// AdvisoryFallbackEvent records that an advisory answered with its local
// fallback because the completion call failed.
type AdvisoryFallbackEvent struct {
	BaseEvent
	Advisory string `json:"advisory"`
	Reason   string `json:"reason"`
}

func NewAdvisoryFallbackEvent(advisory string, cause error) *AdvisoryFallbackEvent {
	reason := ""
	if cause != nil {
		reason = cause.Error()
	}
	return &AdvisoryFallbackEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      EventTypeAdvisoryFallback,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"advisory": advisory,
				"reason":   reason,
			},
		},
		Advisory: advisory,
		Reason:   reason,
	}
}
