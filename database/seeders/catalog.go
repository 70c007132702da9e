package seeders

import (
	"log"

	"rhumuda-booking/models/catalog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedCatalog loads the reference data the inquiry form depends on.
// Each section is skipped when its table already has rows, so restarts
// never duplicate the catalog.
func SeedCatalog(db *gorm.DB) {
	seedJettyPoints(db)
	seedAddOns(db)
	seedPackages(db)
}

func seedJettyPoints(db *gorm.DB) {
	var count int64
	db.Model(&catalog.JettyPoint{}).Count(&count)
	if count > 0 {
		return
	}
	log.Printf("🔍 Seeding jetty points...")

	points := []catalog.JettyPoint{
		{Name: "Merang Jetty", IsActive: true},
		{Name: "Shahbandar Jetty", IsActive: true},
		{Name: "Marang Jetty", IsActive: true},
		{Name: "Kuala Besut Jetty", IsActive: true},
	}
	if err := db.Create(&points).Error; err != nil {
		log.Printf("❌ Failed to seed jetty points: %v", err)
	}
}

func seedAddOns(db *gorm.DB) {
	var count int64
	db.Model(&catalog.AddOn{}).Count(&count)
	if count > 0 {
		return
	}
	log.Printf("🔍 Seeding add-ons...")

	addOns := []catalog.AddOn{
		{Name: "Life jacket & safety equipments", IsActive: true},
		{Name: "Snorkeling gears", IsActive: true},
		{Name: "Fishing rods & tackle", IsActive: true},
		{Name: "Boat tour guide", IsActive: true},
		{Name: "Underwater camera rental", IsActive: false},
	}
	if err := db.Create(&addOns).Error; err != nil {
		log.Printf("❌ Failed to seed add-ons: %v", err)
	}
}

func seedPackages(db *gorm.DB) {
	var count int64
	db.Model(&catalog.PackageCategory{}).Count(&count)
	if count > 0 {
		return
	}
	log.Printf("🔍 Seeding package categories and packages...")

	boatDesc := "Private boat charters around the Terengganu coast"
	fishingDesc := "Guided deep-sea and coastal fishing trips"
	islandDesc := "Day trips to the nearby islands"

	categories := []catalog.PackageCategory{
		{Name: "Boat Charter", Description: &boatDesc},
		{Name: "Fishing Trips", Description: &fishingDesc},
		{Name: "Island Trips", Description: &islandDesc},
	}
	if err := db.Create(&categories).Error; err != nil {
		log.Printf("❌ Failed to seed package categories: %v", err)
		return
	}

	halfDay := 240
	fullDay := 480
	capacityEight := 8
	capacityTwelve := 12
	private := true
	deepSea := "DEEP_SEA"

	packages := []catalog.Package{
		{
			CategoryID:   categories[0].ID,
			Name:         "Half Day Coastal Charter",
			MaxCapacity:  &capacityEight,
			DurationMins: &halfDay,
			IsPrivate:    &private,
			IsActive:     true,
			PriceTiers: []catalog.PriceTier{
				{TierType: catalog.TierTypeFixed, Price: decimal.NewFromInt(550)},
			},
			IncludedServices: []catalog.IncludedService{
				{ServiceName: "Life jackets"},
				{ServiceName: "Experienced boat captain"},
			},
		},
		{
			CategoryID:   categories[1].ID,
			Name:         "Full Day Deep Sea Fishing",
			MaxCapacity:  &capacityEight,
			DurationMins: &fullDay,
			IsPrivate:    &private,
			FishingType:  &deepSea,
			IsActive:     true,
			PriceTiers: []catalog.PriceTier{
				{TierType: catalog.TierTypeFixed, Price: decimal.NewFromInt(1400)},
			},
			IncludedServices: []catalog.IncludedService{
				{ServiceName: "Fishing equipment"},
				{ServiceName: "Bait and ice box"},
				{ServiceName: "Life jackets"},
			},
		},
		{
			CategoryID:   categories[2].ID,
			Name:         "Island Hopping Day Trip",
			MaxCapacity:  &capacityTwelve,
			DurationMins: &fullDay,
			IsActive:     true,
			PriceTiers: []catalog.PriceTier{
				{TierType: catalog.TierTypeAdult, Price: decimal.NewFromInt(120)},
				{TierType: catalog.TierTypeChild, Price: decimal.NewFromInt(80)},
				{TierType: catalog.TierTypeInfant, Price: decimal.NewFromInt(0)},
			},
			IncludedServices: []catalog.IncludedService{
				{ServiceName: "Snorkeling equipment"},
				{ServiceName: "Packed lunch"},
				{ServiceName: "Life jackets"},
			},
		},
	}
	if err := db.Create(&packages).Error; err != nil {
		log.Printf("❌ Failed to seed packages: %v", err)
	}
}
