package database

import (
	"fmt"

	"gorm.io/gorm"

	"printcare/internal/models"
)

// Seed populates reference data: printer models, cartridge models, default
// settings and cities. Existing rows are left untouched, so the seed is safe
// to run repeatedly.
func Seed(db *gorm.DB) error {
	if err := seedPrinterModels(db); err != nil {
		return fmt.Errorf("seed printer models: %w", err)
	}
	if err := seedCartridgeModels(db); err != nil {
		return fmt.Errorf("seed cartridge models: %w", err)
	}
	if err := seedSettings(db); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if err := seedCities(db); err != nil {
		return fmt.Errorf("seed cities: %w", err)
	}
	return nil
}

func seedPrinterModels(db *gorm.DB) error {
	printers := []models.PrinterModel{
		{ModelName: "HP LaserJet Pro M404n", Brand: "HP", Type: models.PrinterLaser},
		{ModelName: "Canon PIXMA G2010", Brand: "Canon", Type: models.PrinterInkjet},
		{ModelName: "Epson L3150", Brand: "Epson", Type: models.PrinterInkjet},
		{ModelName: "Brother HL-L2321D", Brand: "Brother", Type: models.PrinterLaser},
	}
	for _, p := range printers {
		err := db.Where(models.PrinterModel{ModelName: p.ModelName}).
			FirstOrCreate(&p).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCartridgeModels(db *gorm.DB) error {
	type cartridgeSeed struct {
		modelName    string
		printerModel string
		ctype        models.CartridgeType
		color        string
		pageYield    int
	}

	cartridges := []cartridgeSeed{
		{"HP 58A (CF258A)", "HP LaserJet Pro M404n", models.CartridgeOriginal, "BLACK", 3000},
		{"Canon GI-790 Black", "Canon PIXMA G2010", models.CartridgeOriginal, "BLACK", 7000},
	}

	for _, c := range cartridges {
		var printer models.PrinterModel
		err := db.Where("model_name = ?", c.printerModel).First(&printer).Error
		if err != nil {
			return err
		}

		cartridge := models.CartridgeModel{
			ModelName:      c.modelName,
			PrinterModelID: printer.ID,
			Type:           c.ctype,
			Color:          c.color,
			PageYield:      c.pageYield,
		}
		err = db.Where(models.CartridgeModel{ModelName: c.modelName}).
			FirstOrCreate(&cartridge).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func seedSettings(db *gorm.DB) error {
	settings := []models.Setting{
		{Key: models.SettingCompanyName, Value: "PrintCare Solutions", Description: "Company Name"},
		{Key: models.SettingGSTNumber, Value: "27XXXXX1234X1Z5", Description: "GST Registration Number"},
		{Key: models.SettingDefaultTaxRate, Value: "18", Description: "Default Tax Rate (%)"},
		{Key: models.SettingCurrency, Value: "INR", Description: "Currency"},
	}
	for _, s := range settings {
		err := db.Where(models.Setting{Key: s.Key}).FirstOrCreate(&s).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCities(db *gorm.DB) error {
	cities := []models.City{
		{Name: "Mumbai", State: "Maharashtra", Country: "India", IsActive: true},
		{Name: "Pune", State: "Maharashtra", Country: "India", IsActive: true},
		{Name: "Andheri", State: "Maharashtra", Country: "India", IsActive: true},
		{Name: "Delhi", State: "Delhi", Country: "India", IsActive: true},
		{Name: "Bangalore", State: "Karnataka", Country: "India", IsActive: true},
		{Name: "Chennai", State: "Tamil Nadu", Country: "India", IsActive: true},
		{Name: "Hyderabad", State: "Telangana", Country: "India", IsActive: true},
		{Name: "Kolkata", State: "West Bengal", Country: "India", IsActive: true},
	}
	for _, c := range cities {
		err := db.Where(models.City{Name: c.Name, State: c.State}).
			FirstOrCreate(&c).Error
		if err != nil {
			return err
		}
	}
	return nil
}
