package main

import (
	"flag"
	"log"

	"rigtrack/pkg/config"
	"rigtrack/pkg/database/postgresql"
	"rigtrack/seeders"
)

func main() {
	runDemo := flag.Bool("demo", false, "seed the demo equipment fleet and inspection history")
	flag.Parse()

	if !*runDemo {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	seeders.SeedDemoData(db)
}
