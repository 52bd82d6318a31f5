package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"blogpessoal/internal/model"
	"blogpessoal/pkg/config"
	"blogpessoal/pkg/database"
	"blogpessoal/pkg/logger"
)

func main() {
	var (
		env     = flag.String("env", "", "database target (PROD or LOCAL), overrides ENVIRONMENT_START")
		command = flag.String("command", "up", "migration command (up, status)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *env != "" {
		cfg.Environment = strings.ToUpper(*env)
	}

	db, err := database.Open(cfg, logger.New())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close(db)

	switch *command {
	case "up":
		if err := model.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		fmt.Println("Migrations applied successfully")
	case "status":
		for _, table := range model.Tables(db) {
			state := "missing"
			if table.Exists {
				state = "present"
			}
			fmt.Printf("%-15s %s\n", table.Name, state)
		}
	default:
		log.Fatalf("Unknown command: %s", *command)
	}
}
