// tokengen mints a staff JWT for bootstrapping: the first condominium and
// its manager account have to be created by someone, and that someone needs
// a token before any user exists.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/auth"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

const defaultSecret = "change-me"

func main() {
	userID := flag.String("user", "", "subject user id (defaults to a random UUID)")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = defaultSecret
	}

	id := uuid.New()
	if *userID != "" {
		parsed, err := uuid.Parse(*userID)
		if err != nil {
			log.Fatalf("invalid user id: %v", err)
		}
		id = parsed
	}

	token, err := auth.GenerateToken(&models.User{ID: id, Staff: true}, secret)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Println(token)
}
