package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"motohub-api/models"
)

type seedModel struct {
	model        string
	category     string
	engineType   string
	displacement float64
	horsepower   float64
	torque       float64
	topSpeed     float64
	priceUSD     float64
	yearFrom     int
	yearTo       int
	tags         []string
}

// seedCatalog drives the generated dataset: each entry expands into one
// row per model year with derived technical fields.
var seedCatalog = map[string][]seedModel{
	"Yamaha": {
		{"YZF-R1", "Sport", "Inline Four", 998, 200, 112.4, 299, 17999, 2020, 2024, []string{"track", "performance"}},
		{"MT-09", "Naked", "Inline Three", 890, 117, 93, 230, 9999, 2021, 2024, []string{"street", "performance"}},
		{"Tenere 700", "Adventure", "Parallel Twin", 689, 72, 68, 190, 10499, 2020, 2024, []string{"touring", "off-road"}},
		{"FZ-S FI", "Commuter", "Single Cylinder", 149, 12.4, 13.3, 115, 1550, 2020, 2023, []string{"commuting", "budget"}},
		{"Aerox 155", "Scooter", "Single Cylinder", 155, 15, 13.9, 118, 1900, 2021, 2024, []string{"commuting", "urban"}},
	},
	"Honda": {
		{"CBR1000RR-R Fireblade", "Sport", "Inline Four", 999, 215, 113, 299, 28500, 2020, 2024, []string{"track", "performance"}},
		{"Africa Twin", "Adventure", "Parallel Twin", 1084, 101, 105, 214, 14399, 2020, 2024, []string{"touring", "off-road"}},
		{"CB350", "Cruiser", "Single Cylinder", 348, 21, 30, 130, 2450, 2021, 2024, []string{"classic", "commuting"}},
		{"Activa 6G", "Scooter", "Single Cylinder", 109, 7.7, 8.8, 85, 950, 2020, 2024, []string{"commuting", "budget"}},
		{"Gold Wing", "Touring", "Flat Six", 1833, 126, 170, 200, 25600, 2020, 2023, []string{"touring", "luxury"}},
	},
	"Kawasaki": {
		{"Ninja ZX-10R", "Sport", "Inline Four", 998, 203, 114.9, 299, 17399, 2021, 2024, []string{"track", "performance"}},
		{"Z900", "Naked", "Inline Four", 948, 125, 98.6, 240, 9199, 2020, 2024, []string{"street", "performance"}},
		{"Versys 650", "Touring", "Parallel Twin", 649, 66, 61, 200, 8899, 2020, 2023, []string{"touring", "commuting"}},
		{"KLX230", "Off-Road", "Single Cylinder", 233, 19, 19.8, 135, 4999, 2020, 2024, []string{"off-road", "trail"}},
	},
	"Suzuki": {
		{"GSX-R1000", "Sport", "Inline Four", 999, 199, 117.6, 299, 15899, 2020, 2023, []string{"track", "performance"}},
		{"V-Strom 650", "Adventure", "V-Twin", 645, 70, 62, 185, 8849, 2020, 2024, []string{"touring", "commuting"}},
		{"Gixxer SF 250", "Sport", "Single Cylinder", 249, 26.5, 22.2, 161, 2350, 2020, 2024, []string{"street", "budget"}},
		{"Burgman Street", "Scooter", "Single Cylinder", 124, 8.6, 10, 90, 1200, 2020, 2024, []string{"commuting", "urban"}},
	},
	"Royal Enfield": {
		{"Classic 350", "Cruiser", "Single Cylinder", 349, 20.2, 27, 120, 2350, 2021, 2024, []string{"classic", "touring"}},
		{"Himalayan", "Adventure", "Single Cylinder", 411, 24.3, 32, 135, 3150, 2020, 2024, []string{"off-road", "touring", "budget"}},
		{"Continental GT 650", "Sport", "Parallel Twin", 648, 47, 52, 170, 6190, 2020, 2024, []string{"classic", "street"}},
		{"Meteor 350", "Cruiser", "Single Cylinder", 349, 20.2, 27, 120, 2550, 2021, 2024, []string{"classic", "commuting"}},
	},
	"KTM": {
		{"1290 Super Duke R", "Naked", "V-Twin", 1301, 180, 140, 290, 19599, 2020, 2023, []string{"performance", "street"}},
		{"390 Duke", "Naked", "Single Cylinder", 373, 44, 37, 167, 5500, 2020, 2024, []string{"street", "budget"}},
		{"450 EXC-F", "Off-Road", "Single Cylinder", 450, 48, 45, 140, 11099, 2021, 2024, []string{"off-road", "enduro"}},
		{"RC 390", "Sport", "Single Cylinder", 373, 43.5, 37, 179, 5799, 2020, 2024, []string{"track", "budget"}},
	},
	"Harley-Davidson": {
		{"Street Glide", "Touring", "V-Twin", 1868, 90, 158, 180, 27999, 2020, 2024, []string{"touring", "classic", "luxury"}},
		{"Iron 883", "Cruiser", "V-Twin", 883, 50, 70, 170, 11249, 2020, 2022, []string{"classic", "street"}},
		{"Pan America 1250", "Adventure", "V-Twin", 1252, 150, 128, 220, 17319, 2021, 2024, []string{"touring", "off-road"}},
	},
	"BMW": {
		{"S 1000 RR", "Sport", "Inline Four", 999, 205, 113, 299, 17895, 2020, 2024, []string{"track", "performance"}},
		{"R 1250 GS", "Adventure", "Boxer Twin", 1254, 136, 143, 219, 17995, 2020, 2023, []string{"touring", "luxury"}},
		{"G 310 R", "Naked", "Single Cylinder", 313, 34, 28, 143, 4995, 2020, 2024, []string{"street", "budget"}},
	},
	"Ducati": {
		{"Panigale V4", "Sport", "V-Four", 1103, 214, 124, 299, 23295, 2020, 2024, []string{"track", "performance", "luxury"}},
		{"Monster", "Naked", "V-Twin", 937, 111, 93, 250, 11995, 2021, 2024, []string{"street", "performance"}},
		{"Multistrada V4", "Adventure", "V-Four", 1158, 170, 125, 250, 21995, 2021, 2024, []string{"touring", "luxury"}},
	},
	"Hero": {
		{"Splendor Plus", "Commuter", "Single Cylinder", 97, 8, 8.05, 87, 900, 2020, 2024, []string{"commuting", "budget"}},
		{"XPulse 200", "Adventure", "Single Cylinder", 199, 18.8, 17.35, 130, 1750, 2020, 2024, []string{"off-road", "budget"}},
		{"Xtreme 160R", "Naked", "Single Cylinder", 163, 15, 14, 120, 1500, 2021, 2024, []string{"street", "commuting"}},
	},
	"Bajaj": {
		{"Pulsar NS200", "Naked", "Single Cylinder", 199, 24.1, 18.5, 136, 1850, 2020, 2024, []string{"street", "budget"}},
		{"Dominar 400", "Touring", "Single Cylinder", 373, 40, 35, 156, 2850, 2020, 2024, []string{"touring", "budget"}},
		{"Chetak", "Electric", "Electric Motor", 0, 5.4, 20, 73, 1800, 2021, 2024, []string{"electric", "urban"}},
	},
	"TVS": {
		{"Apache RR 310", "Sport", "Single Cylinder", 312, 34, 27.3, 160, 3250, 2020, 2024, []string{"track", "budget"}},
		{"Jupiter", "Scooter", "Single Cylinder", 109, 7.8, 8.4, 85, 950, 2020, 2024, []string{"commuting", "budget"}},
		{"iQube", "Electric", "Electric Motor", 0, 6, 33, 78, 1700, 2021, 2024, []string{"electric", "urban"}},
	},
}

// availabilityMix cycles availability states so the seed has a
// realistic spread, including the unavailable states
var availabilityMix = []string{
	models.AvailabilityAvailable,
	models.AvailabilityAvailable,
	models.AvailabilityAvailable,
	models.AvailabilityLimitedStock,
	models.AvailabilityAvailable,
	models.AvailabilityOutOfStock,
	models.AvailabilityAvailable,
	models.AvailabilityDiscontinued,
	models.AvailabilityAvailable,
	models.AvailabilityLimitedStock,
	models.AvailabilityNotAvailable,
	models.AvailabilityAvailable,
	models.AvailabilityCollector,
}

var categorySeatHeights = map[string]float64{
	"Sport": 825, "Cruiser": 705, "Touring": 750, "Adventure": 850,
	"Naked": 810, "Commuter": 790, "Scooter": 770, "Off-Road": 930, "Electric": 780,
}

var categoryGroundClearance = map[string]float64{
	"Sport": 130, "Cruiser": 120, "Touring": 135, "Adventure": 220,
	"Naked": 165, "Commuter": 165, "Scooter": 145, "Off-Road": 300, "Electric": 150,
}

// SeedData populates the catalog, achievement definitions and a default
// admin account. It is a no-op when motorcycles already exist.
func SeedData(db *gorm.DB) error {
	var motorcycleCount int64
	db.Model(&models.Motorcycle{}).Count(&motorcycleCount)

	if motorcycleCount > 0 {
		log.Println("Database already has data, skipping seed")
		return nil
	}

	created := 0
	sequence := 0
	for manufacturer, modelList := range seedCatalog {
		for _, sm := range modelList {
			for year := sm.yearFrom; year <= sm.yearTo; year++ {
				m := buildMotorcycle(manufacturer, sm, year, sequence)
				sequence++
				if err := db.Create(&m).Error; err != nil {
					log.Printf("Warning: could not seed %s %s %d: %v", manufacturer, sm.model, year, err)
					continue
				}
				created++
			}
		}
	}
	log.Printf("Seeded %d motorcycles", created)

	if err := seedAchievements(db); err != nil {
		return err
	}

	return seedAdminUser(db)
}

func buildMotorcycle(manufacturer string, sm seedModel, year, sequence int) models.Motorcycle {
	// Newer years carry a small price premium over the base listing
	age := year - sm.yearFrom
	price := sm.priceUSD * (1 + 0.02*float64(age))

	mileage := 0.0
	if sm.displacement > 0 {
		mileage = 1200 / (sm.displacement*0.08 + 18)
	}

	fuelType := "Petrol"
	transmission := "Manual"
	gearCount := 6
	if sm.category == "Electric" {
		fuelType = "Electric"
		transmission = "Automatic"
		gearCount = 0
	}
	if sm.category == "Scooter" {
		transmission = "Automatic"
		gearCount = 0
	}
	if sm.displacement > 0 && sm.displacement < 200 {
		gearCount = 5
	}

	braking := "Disc"
	if sm.priceUSD >= 8000 {
		braking = "Dual Disc"
	} else if sm.priceUSD < 1500 {
		braking = "Drum"
	}

	suspension := "Telescopic"
	if sm.category == "Adventure" || sm.category == "Off-Road" {
		suspension = "Long Travel"
	} else if sm.priceUSD >= 15000 {
		suspension = "Fully Adjustable"
	}

	headlight := "Halogen"
	if sm.priceUSD >= 3000 {
		headlight = "LED"
	}

	tyre := "Tubeless"
	if sm.category == "Off-Road" {
		tyre = "Knobby"
	}

	// Interest skews toward newer, more powerful machines
	interest := sm.horsepower*0.3 + float64(year-2019)*8
	if interest > 100 {
		interest = 100
	}

	fuelCapacity := 12.0
	if sm.category == "Touring" || sm.category == "Adventure" {
		fuelCapacity = 20
	} else if sm.category == "Scooter" || sm.category == "Commuter" {
		fuelCapacity = 6
	}

	return models.Motorcycle{
		ID:                 uuid.New().String(),
		Manufacturer:       manufacturer,
		Model:              sm.model,
		Year:               year,
		Category:           sm.category,
		EngineDisplacement: sm.displacement,
		Horsepower:         sm.horsepower,
		Torque:             sm.torque,
		TopSpeed:           sm.topSpeed,
		FuelCapacity:       fuelCapacity,
		EngineType:         sm.engineType,
		Mileage:            mileage,
		PriceUSD:           float64(int(price*100)) / 100,
		Availability:       availabilityMix[sequence%len(availabilityMix)],
		Description:        fmt.Sprintf("The %d %s %s is a %s with a %.0f cc %s engine producing %.1f hp.", year, manufacturer, sm.model, sm.category, sm.displacement, sm.engineType, sm.horsepower),
		ImageURL:           fmt.Sprintf("https://images.motohub.example.com/%s/%s/%d.jpg", slug(manufacturer), slug(sm.model), year),
		Specialisations:    models.StringSlice(sm.tags),
		InterestScore:      interest,
		TransmissionType:   transmission,
		GearCount:          gearCount,
		GroundClearance:    categoryGroundClearance[sm.category],
		SeatHeight:         categorySeatHeights[sm.category],
		ABSAvailable:       sm.priceUSD >= 1800,
		BrakingSystem:      braking,
		SuspensionType:     suspension,
		TyreType:           tyre,
		HeadlightType:      headlight,
		FuelType:           fuelType,
	}
}

func slug(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-':
			out = append(out, '-')
		}
	}
	return string(out)
}

var achievementSeed = []models.Achievement{
	{Code: "first_rating", Name: "First Impressions", Description: "Rate your first motorcycle", Criteria: models.CriteriaRatingsGiven, Threshold: 1, Icon: "star"},
	{Code: "critic", Name: "Critic", Description: "Rate 10 motorcycles", Criteria: models.CriteriaRatingsGiven, Threshold: 10, Icon: "stars"},
	{Code: "first_comment", Name: "Conversation Starter", Description: "Write your first comment", Criteria: models.CriteriaCommentsWritten, Threshold: 1, Icon: "chat"},
	{Code: "voice_of_community", Name: "Voice of the Community", Description: "Write 25 comments", Criteria: models.CriteriaCommentsWritten, Threshold: 25, Icon: "megaphone"},
	{Code: "collector", Name: "Collector", Description: "Favorite 5 motorcycles", Criteria: models.CriteriaFavoritesAdded, Threshold: 5, Icon: "heart"},
	{Code: "garage_owner", Name: "Garage Owner", Description: "Add a motorcycle to your garage", Criteria: models.CriteriaGarageSize, Threshold: 1, Icon: "garage"},
	{Code: "fleet_manager", Name: "Fleet Manager", Description: "Keep 3 motorcycles in your garage", Criteria: models.CriteriaGarageSize, Threshold: 3, Icon: "fleet"},
	{Code: "social_rider", Name: "Social Rider", Description: "Join a rider group", Criteria: models.CriteriaGroupsJoined, Threshold: 1, Icon: "group"},
}

func seedAchievements(db *gorm.DB) error {
	for _, a := range achievementSeed {
		a.ID = uuid.New().String()
		if err := db.Where("code = ?", a.Code).FirstOrCreate(&a).Error; err != nil {
			return fmt.Errorf("failed to seed achievement %s: %w", a.Code, err)
		}
	}
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin-change-me"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:        uuid.New().String(),
		Name:      "MotoHub Admin",
		Email:     "admin@motohub.com",
		Password:  string(hash),
		Role:      models.RoleAdmin,
		Favorites: models.StringSlice{},
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Println("Seeded default admin user (admin@motohub.com)")
	return nil
}
