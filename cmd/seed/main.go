package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fwfps/internal/config"
	"fwfps/internal/database"
	"fwfps/internal/models"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data in child-before-parent order
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM pac_samples")
	db.Exec("DELETE FROM pac_operations")
	db.Exec("DELETE FROM workplan_tasks")
	db.Exec("DELETE FROM workplans")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	analystHash, _ := bcrypt.GenerateFromPassword([]byte("analyst123"), bcrypt.DefaultCost)

	users := []models.User{
		{
			Username:     "admin",
			Email:        "admin@fda.gov",
			PasswordHash: string(adminHash),
			FullName:     "Administrator",
			Role:         "admin",
			Department:   "FWFPS",
			IsActive:     true,
		},
		{
			Username:     "analyst",
			Email:        "analyst@fda.gov",
			PasswordHash: string(analystHash),
			FullName:     "Data Analyst",
			Role:         "analyst",
			Department:   "FWFPS",
			IsActive:     true,
		},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatal("Failed to create user:", err)
		}
	}

	log.Println("Creating workplans...")
	workplans := []models.Workplan{
		{
			Title:       "Q1 Facility Inspection Program",
			Description: "Quarterly inspection schedule for high-risk food facilities",
			Status:      models.WorkplanStatusActive,
			Priority:    models.PriorityHigh,
			StartDate:   date(2025, time.January, 1),
			EndDate:     date(2025, time.March, 31),
			AssignedTo:  "FDA Team Alpha",
			Progress:    45,
		},
		{
			Title:       "Pesticide Residue Monitoring",
			Description: "Nationwide sampling program for pesticide residues in produce",
			Status:      models.WorkplanStatusPlanned,
			Priority:    models.PriorityMedium,
			StartDate:   date(2025, time.February, 1),
			EndDate:     date(2025, time.August, 31),
			AssignedTo:  "FDA Team Beta",
			Progress:    0,
		},
		{
			Title:       "Import Food Safety Assessment",
			Description: "Assessment of imported food products safety measures",
			Status:      models.WorkplanStatusActive,
			Priority:    models.PriorityHigh,
			StartDate:   date(2025, time.January, 15),
			EndDate:     date(2025, time.June, 15),
			AssignedTo:  "FDA Team Gamma",
			Progress:    60,
		},
	}
	for i := range workplans {
		if err := db.Create(&workplans[i]).Error; err != nil {
			log.Fatal("Failed to create workplan:", err)
		}
	}

	log.Println("Creating PAC operations...")
	operations := []models.PacOperation{
		{
			OperationType:    "inspection",
			FacilityName:     "Global Foods Manufacturing Inc.",
			FacilityID:       "FDA-12345",
			OperationDate:    time.Date(2025, time.February, 15, 9, 0, 0, 0, time.UTC),
			Status:           models.OperationStatusScheduled,
			Priority:         models.PriorityHigh,
			Inspector:        "John Smith",
			Notes:            "Routine inspection - follow up on previous findings",
			RiskLevel:        "low",
			ComplianceStatus: "pending",
		},
		{
			OperationType:    "sampling",
			FacilityName:     "Fresh Produce Distributors LLC",
			FacilityID:       "FDA-67890",
			OperationDate:    time.Date(2025, time.February, 20, 14, 30, 0, 0, time.UTC),
			Status:           models.OperationStatusCompleted,
			Priority:         models.PriorityMedium,
			Inspector:        "Sarah Johnson",
			Notes:            "Samples collected for pesticide residue testing",
			RiskLevel:        "low",
			ComplianceStatus: "pending",
		},
		{
			OperationType:    "audit",
			FacilityName:     "Organic Grains Processing Co.",
			FacilityID:       "FDA-11111",
			OperationDate:    time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
			Status:           models.OperationStatusInProgress,
			Priority:         models.PriorityHigh,
			Inspector:        "Mike Davis",
			Notes:            "Comprehensive audit of HACCP implementation",
			RiskLevel:        "low",
			ComplianceStatus: "pending",
		},
	}
	for i := range operations {
		if err := db.Create(&operations[i]).Error; err != nil {
			log.Fatal("Failed to create operation:", err)
		}
	}

	log.Println("Database seeded with sample data")
}
