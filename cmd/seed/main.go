// Command main runs the database seeder for Vybe.
package main

import (
	"flag"
	"log"

	"vybe/internal/bootstrap"
	"vybe/internal/config"
	"vybe/internal/seed"
)

func main() {
	// Parse command line flags
	numArtists := flag.Int("artists", 10, "Number of demo artists to create")
	adminEmail := flag.String("admin-email", "", "Admin account email (default admin@vybe.local)")
	presetsOnly := flag.Bool("presets-only", false, "Only apply the platform directory and flagship event")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := bootstrap.Options{
		SeedDemo: !*presetsOnly,
		Demo: seed.Options{
			NumArtists: *numArtists,
			AdminEmail: *adminEmail,
		},
	}
	if *presetsOnly {
		opts = bootstrap.Options{SeedPresets: true}
	}

	if _, _, err := bootstrap.InitRuntime(cfg, opts); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	if *presetsOnly {
		log.Println("✅ Presets applied")
		return
	}
	log.Printf("✅ Demo night seeded with %d artists", *numArtists)
}
