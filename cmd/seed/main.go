package main

import (
	"context"
	"log"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/auth"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/config"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/db"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/repository"
)

var defaultRanks = []model.MinistryRank{
	{Name: "Bishop"},
	{Name: "Senior Pastor"},
	{Name: "Pastor"},
	{Name: "Evangelist"},
	{Name: "Deacon"},
	{Name: "Deaconess"},
}

var defaultSkills = []model.MinistrySkill{
	{Name: "Preaching"},
	{Name: "Teaching"},
	{Name: "Worship Leading"},
	{Name: "Counseling"},
	{Name: "Youth Ministry"},
	{Name: "Administration"},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.MinistryRank{},
		&model.MinistrySkill{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	// Bootstrap admin: update the password if the account already exists.
	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	if existing, err := userRepo.FindByEmail(ctx, cfg.AdminEmail); err == nil {
		existing.PasswordHash = hash
		existing.Role = model.RoleAdmin
		if err := userRepo.Update(ctx, existing); err != nil {
			log.Fatalf("Failed to update admin user: %v", err)
		}
		log.Printf("Admin user %s updated", cfg.AdminEmail)
	} else {
		admin := &model.User{
			Name:         "Administrator",
			Email:        cfg.AdminEmail,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Admin user %s created", cfg.AdminEmail)
	}

	// Reference data: only seeded into empty tables so operator edits
	// survive re-runs.
	var rankCount int64
	if err := gormDB.Model(&model.MinistryRank{}).Count(&rankCount).Error; err != nil {
		log.Fatalf("Failed to count ministry ranks: %v", err)
	}
	if rankCount == 0 {
		if err := gormDB.Create(&defaultRanks).Error; err != nil {
			log.Fatalf("Failed to seed ministry ranks: %v", err)
		}
		log.Printf("Seeded %d ministry ranks", len(defaultRanks))
	}

	var skillCount int64
	if err := gormDB.Model(&model.MinistrySkill{}).Count(&skillCount).Error; err != nil {
		log.Fatalf("Failed to count ministry skills: %v", err)
	}
	if skillCount == 0 {
		if err := gormDB.Create(&defaultSkills).Error; err != nil {
			log.Fatalf("Failed to seed ministry skills: %v", err)
		}
		log.Printf("Seeded %d ministry skills", len(defaultSkills))
	}

	log.Println("Seed completed successfully!")
}
