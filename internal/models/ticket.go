package models

import "gorm.io/gorm"

type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
	TicketClosed     TicketStatus = "CLOSED"
)

// ticketTransitions lists the allowed status changes.
var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketOpen:       {TicketInProgress, TicketClosed},
	TicketInProgress: {TicketResolved, TicketOpen},
	TicketResolved:   {TicketClosed, TicketInProgress},
}

func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	for _, allowed := range ticketTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ServiceTicket tracks one repair or maintenance request for a client.
type ServiceTicket struct {
	gorm.Model
	Number string       `gorm:"uniqueIndex;size:30;not null" json:"number"`
	Status TicketStatus `gorm:"type:varchar(20);not null;default:OPEN" json:"status"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `json:"-"`

	PrinterModelID *uint         `json:"printer_model_id,omitempty"`
	PrinterModel   *PrinterModel `json:"-"`

	Issue      string `gorm:"type:text;not null" json:"issue"`
	Priority   string `gorm:"size:10;not null;default:MEDIUM" json:"priority"`
	Resolution string `gorm:"type:text" json:"resolution"`

	AssignedToID *uint `json:"assigned_to_id,omitempty"`
	AssignedTo   *User `json:"-"`
}
