package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Ananya-1041/Prerana/app/config"
	"github.com/Ananya-1041/Prerana/app/database"
	"github.com/Ananya-1041/Prerana/app/models"
)

// Bootstraps a principal from the command line, typically the first admin:
//
//	go run ./app/cmd/add_principal -role admin -id admin1 -password secret -name "Head Admin"
func main() {
	roleFlag := flag.String("role", "admin", "principal role: student, teacher, or admin")
	id := flag.String("id", "", "principal id (unique within the role)")
	password := flag.String("password", "", "initial password")
	name := flag.String("name", "", "display name")
	class := flag.String("class", "", "class (students only)")
	subject := flag.String("subject", "", "subject (teachers only)")
	phone := flag.String("phone", "", "phone number")
	flag.Parse()

	role, err := models.ParseRole(*roleFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *id == "" || *password == "" || *name == "" {
		log.Fatal("id, password, and name are required")
	}

	cfg := config.Load()
	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer database.Disconnect(ctx, db)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}

	p, err := database.CreatePrincipal(ctx, db, role, &models.NewPrincipalRequest{
		ID:       *id,
		Password: *password,
		Name:     *name,
		Class:    *class,
		Subject:  *subject,
		Phone:    *phone,
	})
	if err != nil {
		log.Fatalf("Error creating %s: %v", role, err)
	}

	fmt.Printf("%s created successfully: %s (%s)\n", role, p.Name, p.PrincipalID)
}
