package domain

// Live-channel event envelopes. Field names and nesting are fixed wire
// contracts with connected clients.

const (
	EventNewReport          = "new_report"
	EventConfirmationUpdate = "confirmation_update"
	EventHeartbeat          = "heartbeat"
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type ReportEventData struct {
	ID                string      `json:"id"`
	OffenseTypeID     int         `json:"offense_type_id"`
	Coordinates       Coordinates `json:"coordinates"`
	CreatedAt         string      `json:"created_at"`
	ExpiresAt         string      `json:"expires_at"`
	ConfirmationCount int         `json:"confirmation_count"`
}

type ConfirmationEventData struct {
	ReportID          string `json:"report_id"`
	ConfirmationCount int    `json:"confirmation_count"`
}

func NewReportEvent(r *Report) Event {
	return Event{
		Type: EventNewReport,
		Data: ReportEventData{
			ID:                r.ID.String(),
			OffenseTypeID:     r.OffenseTypeID,
			Coordinates:       r.Coordinates,
			CreatedAt:         r.CreatedAt.Format("2006-01-02T15:04:05.999999"),
			ExpiresAt:         r.ExpiresAt.Format("2006-01-02T15:04:05.999999"),
			ConfirmationCount: r.ConfirmationCount,
		},
	}
}

func NewConfirmationEvent(r *Report) Event {
	return Event{
		Type: EventConfirmationUpdate,
		Data: ConfirmationEventData{
			ReportID:          r.ID.String(),
			ConfirmationCount: r.ConfirmationCount,
		},
	}
}

func NewHeartbeatEvent() Event {
	return Event{Type: EventHeartbeat}
}
