package main

import (
	"database/sql"
	"flag"
	"log"
	"magvar-service/internal/adapters/repositories"
	"magvar-service/internal/config"
	"magvar-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

func main() {
	config.Load()

	seedOnly := flag.Bool("seed-only", false, "skip schema creation")
	flag.Parse()

	databaseURL := config.Get("DATABASE_URL", "")
	dbPath := config.Get("DB_PATH", "data/app.db")

	conn, dialect, err := db.OpenFromEnv(databaseURL, dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/stations.json")
	if err := initAndSeed(conn, dialect, seedPath, !*seedOnly); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, dialect db.Dialect, seedPath string, withSchema bool) error {
	if withSchema {
		log.Printf("Initializing database schema dialect=%s...", dialect)
		if err := repositories.InitSchema(conn, dialect); err != nil {
			return err
		}
		log.Println("Schema ready.")
	}

	log.Printf("Seeding stations from %s...", seedPath)
	if err := repositories.SeedStations(conn, dialect, seedPath); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
