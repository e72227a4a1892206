package database

import (
	"log"
	"time"

	"prospeo/internal/config"
	"prospeo/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Campaign{},
		&models.Comment{},
		&models.File{},
		&models.Message{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin(cfg)
	seedDefaultClients()
}

// The admin account comes from config only; there is no privileged
// sign-up path.
func createDefaultAdmin(cfg *config.Config) {
	password := cfg.AdminPassword
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		FullName:     "Administrateur",
		Role:         models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s", cfg.AdminEmail)
}

// A couple of demo client accounts so a fresh install has something to
// log in with besides the admin.
func seedDefaultClients() {
	type seedClient struct {
		Email    string
		Password string
		FullName string
		Company  string
	}

	clients := []seedClient{
		{
			Email:    "demo@prospeo.local",
			Password: "Demo123!",
			FullName: "Compte Démo",
			Company:  "Démo SARL",
		},
		{
			Email:    "client@prospeo.local",
			Password: "Client123!",
			FullName: "Client Test",
			Company:  "Test & Co",
		},
	}

	for _, cl := range clients {
		var count int64
		if err := DB.Model(&models.User{}).
			Where("email = ?", cl.Email).
			Count(&count).Error; err != nil {
			log.Printf("failed to check seed client %s: %v", cl.Email, err)
			continue
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(cl.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash password for %s: %v", cl.Email, err)
			continue
		}

		user := models.User{
			Email:        cl.Email,
			PasswordHash: string(hash),
			FullName:     cl.FullName,
			Company:      cl.Company,
			Role:         models.RoleClient,
		}

		if err := DB.Create(&user).Error; err != nil {
			log.Printf("failed to create seed client %s: %v", cl.Email, err)
			continue
		}

		log.Printf("created seed client: %s", cl.Email)
	}
}
