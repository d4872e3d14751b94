// Command seed fills the database with demo users, job postings and
// resumes.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/RefuJobs/RefuJobs-server/internal/auth"
	"github.com/RefuJobs/RefuJobs-server/internal/bootstrap"
	"github.com/RefuJobs/RefuJobs-server/internal/config"
	"github.com/RefuJobs/RefuJobs-server/internal/database"
	"github.com/RefuJobs/RefuJobs-server/internal/middleware"
	"github.com/RefuJobs/RefuJobs-server/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()
	numUsers := flag.Int("users", defaults.NumUsers, "Number of users to create")
	postsPerUser := flag.Int("posts", defaults.PostsPerUser, "Job postings per user")
	resumesPerUser := flag.Int("resumes", defaults.ResumesPerUser, "Resumes per user")
	shouldClean := flag.Bool("clean", false, "Delete existing users, posts and resumes first")
	password := flag.String("password", seed.DefaultPassword, "Password shared by generated users")
	fixtures := flag.String("fixtures", "", "YAML fixture file to load instead of generated data")
	randomSeed := flag.Int64("rand", 0, "Random seed for reproducible data (0 = time based)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}
	middleware.SetupLogger(cfg.Env)

	ctx := context.Background()
	db, _, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{SkipRedis: true})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	if *fixtures != "" {
		if *shouldClean {
			if err := seed.ClearData(db.WithContext(ctx)); err != nil {
				log.Fatalf("Cleanup failed: %v", err)
			}
		}
		fx, err := seed.LoadFixturesFile(*fixtures)
		if err != nil {
			log.Fatalf("Failed to load fixtures: %v", err)
		}
		result, err := seed.ApplyFixtures(ctx, db, auth.NewBcryptHasher(cfg.BcryptCost), fx)
		if err != nil {
			log.Fatalf("Fixture seeding failed: %v", err)
		}
		log.Printf("Loaded %d users, %d posts, %d resumes from %s", result.Users, result.Posts, result.Resumes, *fixtures)
		return
	}

	opts := seed.Options{
		NumUsers:       *numUsers,
		PostsPerUser:   *postsPerUser,
		ResumesPerUser: *resumesPerUser,
		BatchSize:      defaults.BatchSize,
		ShouldClean:    *shouldClean,
		Password:       *password,
		BcryptCost:     cfg.BcryptCost,
		RandomSeed:     *randomSeed,
	}
	if _, err := seed.Seed(ctx, db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("All generated users have the password: %s", opts.Password)
}
