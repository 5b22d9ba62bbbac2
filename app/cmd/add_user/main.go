package main

import (
	"flag"
	"fmt"
	"log"
	"nautical-institute/app/config"
	"nautical-institute/app/database"
	"nautical-institute/app/models"

	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "", "email address of the new user")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", models.RoleSecretary, "role: admin, secretary or instructor")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		log.Fatal("email, password, first-name and last-name are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user, *role); err != nil {
		log.Fatal("Error creating user: ", err)
	}

	fmt.Printf("User created successfully: %s %s (%s) with role %s\n",
		user.FirstName, user.LastName, user.Email, *role)
}
