// Command seed fills the database with demo users and health history.
package main

import (
	"context"
	"flag"
	"log"

	"healthtrack/internal/config"
	"healthtrack/internal/database"
	"healthtrack/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of random users to create besides the demo user")
	days := flag.Int("days", 30, "Days of history per user, ending today")
	maxPerDay := flag.Int("per-day", 3, "Maximum logs per user per day")
	skipRate := flag.Float64("skip-rate", 0.15, "Chance a user skips a day")
	shouldClean := flag.Bool("clean", true, "Delete all users and logs before seeding")
	fast := flag.Bool("fast", false, "Hash passwords with the minimum bcrypt cost")
	flag.Parse()

	log.Printf("Seeding %d users with %d days of history, clean=%v", *numUsers, *days, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid timezone: %v", err)
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	s := seed.NewSeeder(db, seed.Options{
		NumUsers:    *numUsers,
		Days:        *days,
		MaxPerDay:   *maxPerDay,
		SkipDayRate: *skipRate,
		ShouldClean: *shouldClean,
		FastHash:    *fast,
	}, loc)

	users, err := s.Run(ctx)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done: %d users. Log in as %s with password %s", len(users), seed.DemoEmail, seed.DefaultPassword)
}
