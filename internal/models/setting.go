package models

import "gorm.io/gorm"

// Setting keys seeded by default.
const (
	SettingCompanyName    = "COMPANY_NAME"
	SettingGSTNumber      = "GST_NUMBER"
	SettingDefaultTaxRate = "DEFAULT_TAX_RATE"
	SettingCurrency       = "CURRENCY"
)

type Setting struct {
	gorm.Model
	Key         string `gorm:"uniqueIndex;size:100;not null" json:"key"`
	Value       string `gorm:"size:255;not null" json:"value"`
	Description string `gorm:"size:255" json:"description"`
}
