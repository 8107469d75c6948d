package models

import "gorm.io/gorm"

type PrinterType string

const (
	PrinterLaser     PrinterType = "LASER"
	PrinterInkjet    PrinterType = "INKJET"
	PrinterDotMatrix PrinterType = "DOT_MATRIX"
)

func (t PrinterType) Valid() bool {
	switch t {
	case PrinterLaser, PrinterInkjet, PrinterDotMatrix:
		return true
	}
	return false
}

type PrinterModel struct {
	gorm.Model
	ModelName string      `gorm:"uniqueIndex;size:255;not null" json:"model_name"`
	Brand     string      `gorm:"size:100;not null" json:"brand"`
	Type      PrinterType `gorm:"type:varchar(20);not null" json:"type"`

	Cartridges []CartridgeModel `json:"-"`
}

type CartridgeType string

const (
	CartridgeOriginal   CartridgeType = "ORIGINAL"
	CartridgeCompatible CartridgeType = "COMPATIBLE"
	CartridgeRefilled   CartridgeType = "REFILLED"
)

func (t CartridgeType) Valid() bool {
	switch t {
	case CartridgeOriginal, CartridgeCompatible, CartridgeRefilled:
		return true
	}
	return false
}

type CartridgeModel struct {
	gorm.Model
	ModelName      string        `gorm:"uniqueIndex;size:255;not null" json:"model_name"`
	PrinterModelID uint          `gorm:"not null" json:"printer_model_id"`
	PrinterModel   PrinterModel  `json:"-"`
	Type           CartridgeType `gorm:"type:varchar(20);not null" json:"type"`
	Color          string        `gorm:"size:30;not null" json:"color"`
	PageYield      int           `json:"page_yield"`
}
