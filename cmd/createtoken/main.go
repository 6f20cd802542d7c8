package main

import (
	"flag"
	"fmt"
	"log"

	"peoplehub.com/peoplehub/config"
	"peoplehub.com/peoplehub/security"
)

func main() {
	configPath := flag.String("config", "", "path to client config yaml")
	employeeID := flag.String("employee", "", "employee id to embed")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "email address")
	role := flag.String("role", security.RoleEmployee, "admin or employee")
	ttl := flag.Int64("ttl", 3600, "token lifetime in seconds")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Secret == "" {
		log.Fatal("signing secret is required (PEOPLEHUB_SECRET or secret)")
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		EmployeeID: *employeeID,
		Name:       *name,
		Email:      *email,
		Role:       *role,
	}, cfg.Secret, *ttl)
	if err != nil {
		log.Fatalf("create token: %v", err)
	}

	fmt.Println(token)
}
