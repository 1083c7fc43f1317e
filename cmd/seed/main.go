package main

import (
	"log"
	"os"

	"prism-spend-be/internal/model"
	"prism-spend-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type catalogSeed struct {
	Name        string
	Vendor      string
	Description string
	Features    []featureSeed
}

type featureSeed struct {
	Name     string
	Category string
}

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

	color.Cyan("Seeding Software Catalog...")
	seedCatalog(db)

	color.Cyan("Seeding Demo User...")
	seedDemoUser(db)

	color.Green("✅ Seeding completed!")
}

func seedCatalog(db *gorm.DB) {
	products := []catalogSeed{
		{
			Name: "Salesforce", Vendor: "Salesforce Inc.",
			Description: "Cloud CRM platform for sales, service and marketing teams.",
			Features: []featureSeed{
				{"Contact Management", "CRM"},
				{"Lead Tracking", "CRM"},
				{"Sales Pipeline", "CRM"},
				{"Email Campaigns", "Email & Communication"},
				{"Custom Reports", "Reporting"},
			},
		},
		{
			Name: "HubSpot", Vendor: "HubSpot Inc.",
			Description: "Inbound marketing, sales and CRM suite.",
			Features: []featureSeed{
				{"Contact Management", "CRM"},
				{"Lead Tracking", "CRM"},
				{"Email Campaigns", "Email & Communication"},
				{"Landing Pages", "Other"},
				{"Custom Reports", "Reporting"},
			},
		},
		{
			Name: "Slack", Vendor: "Salesforce Inc.",
			Description: "Channel-based team messaging and collaboration.",
			Features: []featureSeed{
				{"Team Messaging", "Team Collaboration"},
				{"File Sharing", "File Management"},
				{"Video Calls", "Video Conferencing"},
				{"Integrations", "Integration"},
			},
		},
		{
			Name: "Microsoft Teams", Vendor: "Microsoft",
			Description: "Chat, meetings and file collaboration for organizations.",
			Features: []featureSeed{
				{"Team Messaging", "Team Collaboration"},
				{"File Sharing", "File Management"},
				{"Video Calls", "Video Conferencing"},
				{"Calendar Integration", "Calendar & Scheduling"},
			},
		},
		{
			Name: "Asana", Vendor: "Asana Inc.",
			Description: "Work management platform for tracking team projects and tasks.",
			Features: []featureSeed{
				{"Task Tracking", "Task Management"},
				{"Project Boards", "Project Planning"},
				{"Timeline View", "Project Planning"},
				{"Workflow Automation", "Automation"},
			},
		},
		{
			Name: "Monday.com", Vendor: "monday.com Ltd.",
			Description: "Visual work operating system for projects and workflows.",
			Features: []featureSeed{
				{"Task Tracking", "Task Management"},
				{"Project Boards", "Project Planning"},
				{"Workflow Automation", "Automation"},
				{"Custom Dashboards", "Dashboard"},
			},
		},
		{
			Name: "Dropbox", Vendor: "Dropbox Inc.",
			Description: "Cloud file storage and sharing.",
			Features: []featureSeed{
				{"File Storage", "File Management"},
				{"File Sharing", "File Management"},
				{"Version History", "File Management"},
			},
		},
		{
			Name: "Google Drive", Vendor: "Google",
			Description: "Cloud storage with collaborative documents.",
			Features: []featureSeed{
				{"File Storage", "File Management"},
				{"File Sharing", "File Management"},
				{"Document Editing", "Document Editing"},
			},
		},
	}

	for _, p := range products {
		var existing model.CatalogProduct
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			color.Yellow("Catalog product '%s' already exists, skipping...", p.Name)
			continue
		}

		product := model.CatalogProduct{
			Id:          uuid.New(),
			Name:        p.Name,
			VendorName:  p.Vendor,
			Description: p.Description,
		}
		if err := db.Create(&product).Error; err != nil {
			color.Red("Error creating catalog product '%s': %v", p.Name, err)
			continue
		}

		for _, f := range p.Features {
			feature := model.CatalogFeature{
				Id:        uuid.New(),
				CatalogId: product.Id,
				Name:      f.Name,
				Category:  f.Category,
			}
			if err := db.Create(&feature).Error; err != nil {
				color.Red("Error creating feature '%s' for '%s': %v", f.Name, p.Name, err)
			}
		}

		color.Green("Created catalog product: %s (%d features)", p.Name, len(p.Features))
	}
}

func seedDemoUser(db *gorm.DB) {
	email := "demo@prism.local"

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Demo user already exists, skipping...")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Error hashing demo password: %v", err)
		return
	}

	companyId := uuid.New()
	user := model.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Demo Company Admin",
		Role:         "company",
		CompanyId:    &companyId,
	}
	if err := db.Create(&user).Error; err != nil {
		color.Red("Error creating demo user: %v", err)
		return
	}

	color.Green("Created demo user %s (company %s)", email, companyId)
}
