package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tooldocker/internal/config"
	"tooldocker/internal/db"
	"tooldocker/internal/model"
	"tooldocker/internal/repository"
)

// SeedSeller describes one demo seller with their catalog.
type SeedSeller struct {
	Email    string        `json:"email"`
	FullName string        `json:"full_name"`
	Password string        `json:"password"`
	Role     string        `json:"role"`
	Approved bool          `json:"approved"`
	Products []SeedProduct `json:"products"`
}

// SeedProduct describes one demo listing.
type SeedProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
}

var defaultSeed = []SeedSeller{
	{
		Email:    "admin@tooldocker.example",
		FullName: "Site Admin",
		Password: "admin-password",
		Role:     model.RoleAdmin,
		Approved: true,
	},
	{
		Email:    "workshop@tooldocker.example",
		FullName: "Granite Workshop",
		Password: "seller-password",
		Role:     model.RoleSeller,
		Approved: true,
		Products: []SeedProduct{
			{Name: "Bridge Saw BS-600", Description: "Automatic bridge saw for granite slabs.", Category: "Bridge Saw Machine", Price: "12499.00", Stock: 2},
			{Name: "Diamond Bit Set", Description: "10-piece wet drilling diamond bit set.", Category: "Diamond Bits", Price: "189.99", Stock: 40},
			{Name: "Edge Polisher EP-3", Description: "Handheld edge polishing machine.", Category: "Polishing Machine", Price: "799.00", Stock: 7},
		},
	},
	{
		Email:    "pending@tooldocker.example",
		FullName: "Pending Seller",
		Password: "seller-password",
		Role:     model.RoleSeller,
		Approved: false,
	},
}

func main() {
	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.Profile{}, &model.UserApproval{}, &model.Product{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	sellers := defaultSeed
	if path := os.Getenv("SEED_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read seed file: %v", err)
		}
		if err := json.Unmarshal(data, &sellers); err != nil {
			log.Fatalf("parse seed file: %v", err)
		}
	}

	ctx := context.Background()
	profileRepo := repository.NewProfileRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	approvalRepo := repository.NewApprovalRepository(gormDB)

	seeded := 0
	for _, s := range sellers {
		profile, err := profileRepo.FindByEmail(ctx, s.Email)
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				log.Fatalf("lookup %s: %v", s.Email, err)
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), 10)
			if err != nil {
				log.Fatalf("hash password for %s: %v", s.Email, err)
			}
			role := s.Role
			if role == "" {
				role = model.RoleSeller
			}
			profile = &model.Profile{
				ID:           uuid.New(),
				Email:        s.Email,
				FullName:     s.FullName,
				PasswordHash: string(hash),
				Role:         role,
			}
			if err := profileRepo.Create(ctx, profile); err != nil {
				log.Fatalf("create profile %s: %v", s.Email, err)
			}
		}

		if s.Approved {
			now := time.Now().UTC()
			if _, err := approvalRepo.Upsert(ctx, profile.ID, true, &now); err != nil {
				log.Fatalf("approve %s: %v", s.Email, err)
			}
		}

		for _, p := range s.Products {
			if existing, err := productRepo.FindByName(ctx, p.Name); err == nil && existing != nil {
				continue
			}
			price, err := decimal.NewFromString(p.Price)
			if err != nil {
				log.Fatalf("bad price for %q: %v", p.Name, err)
			}
			product := &model.Product{
				UserID:      profile.ID,
				Name:        p.Name,
				Description: p.Description,
				Category:    p.Category,
				Price:       price,
				Stock:       p.Stock,
			}
			if err := productRepo.Create(ctx, product); err != nil {
				log.Fatalf("create product %q: %v", p.Name, err)
			}
			seeded++
		}
	}

	log.Printf("seed complete: %d sellers, %d products", len(sellers), seeded)
}
