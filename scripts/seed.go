// Development fixture loader. Creates a few accounts and job postings so
// the search, application and moderation flows can be exercised locally.
//
// Usage: DATABASE_URL=postgres://... go run scripts/seed.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type seedJob struct {
	title            string
	description      string
	requiredSkills   string
	location         string
	salaryMin        *int64
	salaryMax        *int64
	isRemote         bool
	visaSponsorship  bool
	status           string
	moderationStatus string
}

func intPtr(v int64) *int64 { return &v }

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	recruiterID := seedUser(ctx, pool, "test_recruiter", "recruiter@example.com", "testpass123", "recruiter")
	seekerID := seedUser(ctx, pool, "test_seeker", "seeker@example.com", "testpass123", "job_seeker")
	adminID := seedUser(ctx, pool, "test_admin", "admin@example.com", "testpass123", "admin")

	jobs := []seedJob{
		{
			title:            "Senior Python Developer",
			description:      "We are looking for an experienced Python developer to join our backend team.",
			requiredSkills:   "Python, Django, PostgreSQL",
			location:         "San Francisco, CA",
			salaryMin:        intPtr(120000),
			salaryMax:        intPtr(150000),
			isRemote:         true,
			visaSponsorship:  true,
			status:           "active",
			moderationStatus: "approved",
		},
		{
			title:            "Frontend Engineer",
			description:      "Build delightful user interfaces with a modern toolchain.",
			requiredSkills:   "JavaScript, React, CSS",
			location:         "New York, NY",
			salaryMin:        intPtr(95000),
			salaryMax:        intPtr(125000),
			status:           "pending",
			moderationStatus: "pending",
		},
		{
			title:            "Make money fast!!!",
			description:      "Work from home, no experience needed, guaranteed income.",
			requiredSkills:   "",
			location:         "Anywhere",
			status:           "rejected",
			moderationStatus: "rejected",
		},
		{
			title:            "Data Scientist",
			description:      "Analyze product data and build predictive models.",
			requiredSkills:   "Python, SQL, Machine Learning",
			location:         "Austin, TX",
			salaryMin:        intPtr(110000),
			salaryMax:        intPtr(140000),
			isRemote:         true,
			status:           "pending",
			moderationStatus: "pending",
		},
	}

	for _, job := range jobs {
		seedPosting(ctx, pool, recruiterID, job)
	}

	fmt.Printf("Seeded users: recruiter=%d seeker=%d admin=%d\n", recruiterID, seekerID, adminID)
	fmt.Println("All test accounts use password: testpass123")
}

func seedUser(ctx context.Context, pool *pgxpool.Pool, username, email, password, role string) int64 {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var id int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		username, email, string(hash), role,
	).Scan(&id)
	if err != nil {
		log.Fatalf("seed user %s: %v", username, err)
	}
	return id
}

func seedPosting(ctx context.Context, pool *pgxpool.Pool, recruiterID int64, job seedJob) {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_postings WHERE recruiter_id = $1 AND title = $2)`,
		recruiterID, job.title,
	).Scan(&exists)
	if err != nil {
		log.Fatalf("check posting %q: %v", job.title, err)
	}
	if exists {
		return
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO job_postings
			(recruiter_id, title, description, required_skills, location,
			 salary_min, salary_max, is_remote, visa_sponsorship, status,
			 moderation_status, moderation_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, '', NOW(), NOW())`,
		recruiterID, job.title, job.description, job.requiredSkills, job.location,
		job.salaryMin, job.salaryMax, job.isRemote, job.visaSponsorship,
		job.status, job.moderationStatus,
	)
	if err != nil {
		log.Fatalf("seed posting %q: %v", job.title, err)
	}
}
