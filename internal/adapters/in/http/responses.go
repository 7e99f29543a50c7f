package http

import (
	"time"

	"booking/internal/core/application/usecases/queries"
)

// jobJSON is the wire shape of a job in success payloads.
// Durations are rendered in whole seconds.
type jobJSON struct {
	ID              string     `json:"id"`
	CustomerID      string     `json:"customer_id"`
	TranslatorID    *string    `json:"translator_id,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	ContactEmail    string     `json:"contact_email,omitempty"`
	Status          string     `json:"status"`
	AdminComments   string     `json:"admin_comments,omitempty"`
	Flagged         string     `json:"flagged"`
	ManuallyHandled string     `json:"manually_handled"`
	ByAdmin         string     `json:"by_admin"`
	SessionTime     *int64     `json:"session_time,omitempty"`
	CancelledBy     *string    `json:"cancelled_by,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// historyEntryJSON pairs a job with its telemetry record in the history
// listing. Telemetry fields are absent when no distance feed ever reported.
type historyEntryJSON struct {
	jobJSON
	Distance   *float64 `json:"distance,omitempty"`
	TravelTime *int64   `json:"time,omitempty"`
}

func toJobJSON(resp queries.JobResponse) jobJSON {
	j := jobJSON{
		ID:              resp.ID.String(),
		CustomerID:      resp.CustomerID.String(),
		Title:           resp.Title,
		Description:     resp.Description,
		ContactEmail:    resp.ContactEmail,
		Status:          resp.Status,
		AdminComments:   resp.AdminComments,
		Flagged:         resp.Flagged,
		ManuallyHandled: resp.ManuallyHandled,
		ByAdmin:         resp.ByAdmin,
		CancelledBy:     resp.CancelledBy,
		StartedAt:       resp.StartedAt,
		CompletedAt:     resp.CompletedAt,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}

	if resp.TranslatorID != nil {
		id := resp.TranslatorID.String()
		j.TranslatorID = &id
	}
	if resp.SessionTime != nil {
		seconds := int64(resp.SessionTime.Seconds())
		j.SessionTime = &seconds
	}

	return j
}

func toJobListJSON(jobs []queries.JobResponse) []jobJSON {
	list := make([]jobJSON, len(jobs))
	for i, resp := range jobs {
		list[i] = toJobJSON(resp)
	}
	return list
}

func toHistoryJSON(entries []queries.JobHistoryResponse) []historyEntryJSON {
	list := make([]historyEntryJSON, len(entries))
	for i, entry := range entries {
		list[i] = historyEntryJSON{
			jobJSON:  toJobJSON(entry.Job),
			Distance: entry.Distance,
		}
		if entry.TravelTime != nil {
			seconds := int64(entry.TravelTime.Seconds())
			list[i].TravelTime = &seconds
		}
	}
	return list
}
