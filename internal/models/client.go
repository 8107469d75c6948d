package models

import "gorm.io/gorm"

// Client is a business customer whose printer fleet we service.
type Client struct {
	gorm.Model
	Name        string `gorm:"size:255;not null" json:"name"`
	ContactName string `gorm:"size:255" json:"contact_name"`
	Email       string `gorm:"size:255" json:"email"`
	Phone       string `gorm:"size:50" json:"phone"`
	Address     string `gorm:"type:text" json:"address"`
	GSTIN       string `gorm:"size:15" json:"gstin"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`

	CityID *uint `json:"city_id,omitempty"`
	City   *City `json:"city,omitempty"`

	Tickets  []ServiceTicket `json:"-"`
	Invoices []Invoice       `json:"-"`
}
