package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	"paint-advisor-be/internal/model"
	"paint-advisor-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedDemoUser(db)

	paints := defaultPaints()
	if csvPath := os.Getenv("SEED_CSV_PATH"); csvPath != "" {
		loaded, err := loadPaintsCSV(csvPath)
		if err != nil {
			log.Fatalf("Error: Failed to load catalog CSV %s: %v", csvPath, err)
		}
		color.Cyan("Loaded %d paints from %s", len(loaded), csvPath)
		paints = loaded
	}
	seedPaints(db, paints)

	color.Green("Seeding completed!")
}

// loadPaintsCSV reads a catalog export with a header row:
// name,color_name,surface_type,environment,finish_type,line,features,description,price
func loadPaintsCSV(path string) ([]model.Paint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}

	paints := make([]model.Paint, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < 9 {
			return nil, fmt.Errorf("row %d: expected 9 columns, got %d", i+2, len(rec))
		}
		price, err := strconv.ParseFloat(rec[8], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q", i+2, rec[8])
		}
		paints = append(paints, model.Paint{
			Name:        rec[0],
			ColorName:   rec[1],
			SurfaceType: rec[2],
			Environment: rec[3],
			FinishType:  rec[4],
			Line:        rec[5],
			Features:    rec[6],
			Description: rec[7],
			Price:       price,
		})
	}
	return paints, nil
}

func seedDemoUser(db *gorm.DB) {
	color.Cyan("Seeding demo user...")

	var existing model.User
	if err := db.Where("email = ?", "demo@paintadvisor.local").First(&existing).Error; err == nil {
		color.Yellow("Demo user already exists, skipping...")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Failed to hash demo password: %v", err)
		return
	}

	user := model.User{
		Email:        "demo@paintadvisor.local",
		PasswordHash: string(hash),
		FullName:     "Demo Customer",
		Role:         "user",
	}
	if err := db.Create(&user).Error; err != nil {
		color.Red("Failed to create demo user: %v", err)
		return
	}
	color.Green("Created demo user: %s", user.Email)
}

func defaultPaints() []model.Paint {
	return []model.Paint{
		{Name: "Classic Wall White", ColorName: "white", SurfaceType: "wall", Environment: "interior", FinishType: "matte", Line: "Standard", Features: "washable, high coverage", Description: "A forgiving everyday matte for living spaces.", Price: 24.90},
		{Name: "Morning Sky", ColorName: "blue", SurfaceType: "wall", Environment: "interior", FinishType: "matte", Line: "Standard", Features: "washable, odor-free", Description: "A soft light blue for bedrooms and studies.", Price: 27.50},
		{Name: "Deep Navy Accent", ColorName: "navy blue", SurfaceType: "wall", Environment: "interior", FinishType: "satin", Line: "Premium", Features: "washable, high coverage", Description: "A saturated navy for feature walls.", Price: 39.00},
		{Name: "Meadow Green", ColorName: "green", SurfaceType: "wall", Environment: "interior", FinishType: "matte", Line: "Standard", Features: "odor-free, anti-mold", Description: "A calm green that works in kitchens too.", Price: 28.40},
		{Name: "Blush Rose", ColorName: "pink", SurfaceType: "wall", Environment: "interior", FinishType: "matte", Line: "Standard", Features: "washable, odor-free", Description: "A warm pink popular for nurseries.", Price: 26.90},
		{Name: "Soft Pearl", ColorName: "gray", SurfaceType: "wall", Environment: "interior", FinishType: "satin", Line: "Premium", Features: "washable, high coverage", Description: "A neutral pearl gray with a gentle sheen.", Price: 36.20},
		{Name: "Bathroom Shield", ColorName: "white", SurfaceType: "wall", Environment: "interior", FinishType: "semi-gloss", Line: "Premium", Features: "anti-mold, waterproof, washable", Description: "Built for humid rooms, scrubbable and mold resistant.", Price: 41.70},
		{Name: "Facade Fresh White", ColorName: "white", SurfaceType: "wall", Environment: "exterior", FinishType: "matte", Line: "Standard", Features: "uv resistant, waterproof", Description: "A weatherproof exterior masonry paint.", Price: 33.80},
		{Name: "Terracotta Sunset", ColorName: "orange", SurfaceType: "wall", Environment: "exterior", FinishType: "matte", Line: "Standard", Features: "uv resistant, high coverage", Description: "A Mediterranean terracotta for facades.", Price: 34.50},
		{Name: "Storm Gray Render", ColorName: "gray", SurfaceType: "wall", Environment: "exterior", FinishType: "matte", Line: "Economy", Features: "uv resistant", Description: "A budget-friendly exterior gray.", Price: 22.10},
		{Name: "Timber Satin Oak", ColorName: "brown", SurfaceType: "wood", Environment: "both", FinishType: "satin", Line: "Standard", Features: "quick drying", Description: "A satin wood paint for furniture and trim.", Price: 29.90},
		{Name: "Nordic Pine White", ColorName: "white", SurfaceType: "wood", Environment: "interior", FinishType: "satin", Line: "Premium", Features: "odor-free, quick drying", Description: "A Scandinavian white for wooden panelling.", Price: 37.60},
		{Name: "Garden Fence Green", ColorName: "green", SurfaceType: "wood", Environment: "exterior", FinishType: "matte", Line: "Economy", Features: "uv resistant, waterproof", Description: "A tough opaque stain for fences and sheds.", Price: 19.90},
		{Name: "Iron Guard Anthracite", ColorName: "gray", SurfaceType: "metal", Environment: "both", FinishType: "gloss", Line: "Premium", Features: "waterproof, quick drying", Description: "A direct-to-rust metal paint for gates and railings.", Price: 44.30},
		{Name: "Radiator Fresh White", ColorName: "white", SurfaceType: "metal", Environment: "interior", FinishType: "semi-gloss", Line: "Standard", Features: "quick drying", Description: "Heat resistant white for radiators and pipes.", Price: 31.40},
		{Name: "Harbor Blue Steel", ColorName: "blue", SurfaceType: "metal", Environment: "exterior", FinishType: "gloss", Line: "Premium", Features: "waterproof, uv resistant", Description: "A marine-grade blue for exterior steelwork.", Price: 46.80},
		{Name: "Sunny Side Yellow", ColorName: "yellow", SurfaceType: "wall", Environment: "interior", FinishType: "matte", Line: "Standard", Features: "washable, odor-free", Description: "A cheerful yellow for kitchens and hallways.", Price: 27.90},
		{Name: "Hallway Warm Beige", ColorName: "beige", SurfaceType: "wall", Environment: "interior", FinishType: "matte", Line: "Economy", Features: "high coverage", Description: "An easy beige that hides scuffs well.", Price: 18.50},
	}
}

func seedPaints(db *gorm.DB, paints []model.Paint) {
	color.Cyan("Seeding paint catalog...")

	for _, p := range paints {
		var existing model.Paint
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			color.Yellow("Paint '%s' already exists, skipping...", p.Name)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			color.Red("Failed to create paint '%s': %v", p.Name, err)
		} else {
			color.Green("Created paint: %s (%s, %s)", p.Name, p.ColorName, p.SurfaceType)
		}
	}
}
