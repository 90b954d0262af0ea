package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/EmpoweredVote/EV-Legislators/internal/congressimport"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	var (
		dbURL  = flag.String("db", os.Getenv("DATABASE_URL"), "Postgres DSN (default: env DATABASE_URL)")
		era    = flag.String("era", "modern", "dataset era preset: modern or historic")
		urls   = flag.String("urls", "", "comma-separated source URLs (default: published current + historical documents)")
		cutoff = flag.String("cutoff", "", "override the term start-date cutoff (ISO date)")
		minID  = flag.Int("min-session", 0, "override the minimum eligible session id")
		area   = flag.String("area-policy", "", "override the area-id policy: district or chamber")
		dryRun = flag.Bool("dry-run", false, "fetch and reconcile only; no DB writes")
	)
	flag.Parse()

	cfg := congressimport.Config{
		DatabaseURL:  *dbURL,
		Era:          congressimport.Era(*era),
		Cutoff:       *cutoff,
		MinSessionID: *minID,
		AreaPolicy:   congressimport.AreaPolicy(*area),
		DryRun:       *dryRun,
	}

	if *urls == "" {
		cfg.URLs = congressimport.DefaultURLs
	} else {
		for _, u := range strings.Split(*urls, ",") {
			if u = strings.TrimSpace(u); u != "" {
				cfg.URLs = append(cfg.URLs, u)
			}
		}
	}

	if _, err := congressimport.Run(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
}
