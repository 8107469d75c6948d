package models

import "gorm.io/gorm"

type City struct {
	gorm.Model
	Name     string `gorm:"size:100;not null;uniqueIndex:idx_cities_name_state" json:"name"`
	State    string `gorm:"size:100;not null;uniqueIndex:idx_cities_name_state" json:"state"`
	Country  string `gorm:"size:100;not null;default:India" json:"country"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`

	Clients []Client `json:"-"`
}
