package main

import (
	"context"
	"log"
	"os"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotel.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	rooms := repository.NewRoomRepository(db)

	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	demo := domain.User{
		Email:        "demo@hotel.example",
		PasswordHash: string(hash),
		Name:         "Demo Guest",
		Role:         domain.RoleGuest,
	}
	if err := users.Create(ctx, &demo); err != nil {
		log.Fatal("user seed failed:", err)
	}

	log.Println("Creating rooms...")
	seedRooms := []domain.Room{
		{
			Name:         "Standard Single",
			Description:  "Compact single room on the second floor",
			Capacity:     1,
			PricePerHour: 10.00,
			PricePerDay:  100.00,
			IsActive:     true,
		},
		{
			Name:         "Standard Double",
			Description:  "Double room with a city view",
			Capacity:     2,
			PricePerHour: 15.00,
			PricePerDay:  140.00,
			IsActive:     true,
		},
		{
			Name:         "Family Suite",
			Description:  "Two-bedroom suite with a kitchenette",
			Capacity:     4,
			PricePerHour: 25.00,
			PricePerDay:  220.00,
			IsActive:     true,
		},
		{
			Name:         "Penthouse",
			Description:  "Top-floor suite, currently closed for renovation",
			Capacity:     2,
			PricePerHour: 60.00,
			PricePerDay:  500.00,
			IsActive:     false,
		},
	}
	for i := range seedRooms {
		if err := rooms.Create(ctx, &seedRooms[i]); err != nil {
			log.Fatal("room seed failed:", err)
		}
	}

	log.Printf("Done: %d rooms, demo user %s / demo1234", len(seedRooms), demo.Email)
}
