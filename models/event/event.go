package event

import "fmt"

// Event is one entry in a venue's events document. All events for a venue
// live in a single JSON array stored under events:{venue}.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time,omitempty"`
	Venue       string `json:"venue"`
	Description string `json:"description,omitempty"`
	TicketURL   string `json:"ticketUrl,omitempty"`
	Created     string `json:"created"`
}

func (e *Event) ToString() string {
	return fmt.Sprintf("Event(id=%s, title=%s, date=%s, venue=%s)",
		e.ID, e.Title, e.Date, e.Venue)
}
