package database

import (
	"log"
	"time"

	"job-board/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init connects to postgres when a DSN is given, otherwise falls back to a
// local sqlite file so the app runs without any external services.
func Init(dsn string) {
	var err error

	if dsn == "" {
		log.Println("DB_DSN not set, using local sqlite file job_board.db")
		DB, err = gorm.Open(sqlite.Open("job_board.db"), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open sqlite db: %v", err)
		}
	} else {
		const maxAttempts = 10
		for i := 1; i <= maxAttempts; i++ {
			log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

			DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
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
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDemoUsers()
}

// a recruiter and a seeker account for local demos
func seedDemoUsers() {
	type seedUser struct {
		Username string
		Email    string
		Password string
		Role     models.UserRole
	}

	users := []seedUser{
		{
			Username: "demo-recruiter",
			Email:    "recruiter@jobboard.local",
			Password: "Recruiter123!",
			Role:     models.RoleRecruiter,
		},
		{
			Username: "demo-seeker",
			Email:    "seeker@jobboard.local",
			Password: "Seeker123!",
			Role:     models.RoleSeeker,
		},
	}

	for _, u := range users {
		var count int64
		if err := DB.Model(&models.User{}).
			Where("email = ?", u.Email).
			Count(&count).Error; err != nil {
			log.Printf("failed to check seed user %s: %v", u.Email, err)
			continue
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash password for %s: %v", u.Email, err)
			continue
		}

		user := models.User{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         u.Role,
		}

		if err := DB.Create(&user).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", u.Email, err)
			continue
		}

		log.Printf("created seed user: %s (role=%s)", u.Email, u.Role)
	}
}
