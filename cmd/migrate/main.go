package main

import (
	"log"
	"nautical-institute/app/config"
	"nautical-institute/app/database"

	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting manual migration...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Manual migration completed successfully!")
}
