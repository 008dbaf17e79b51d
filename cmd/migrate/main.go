package main

import (
	"github.com/handyheroes/handyman-backend/db"
)

func main() {
	db.Migrate()
}
