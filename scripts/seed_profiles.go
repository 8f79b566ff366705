package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
)

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("bad seed date %q: %v", value, err)
	}
	return &t
}

func sampleProfile() *profile.Profile {
	now := time.Now().UTC()
	return &profile.Profile{
		ID:    uuid.New(),
		Name:  "Linh Pham",
		Email: "linh.pham@example.com",
		Education: []profile.Education{
			{
				Institution: "Hanoi University of Science and Technology",
				Degree:      "B.Eng",
				Field:       "Computer Science",
				StartYear:   2019,
				EndYear:     2023,
			},
		},
		Skills: []string{
			"Go", "PostgreSQL", "Redis", "Kafka", "Docker", "Kubernetes",
			"React 18", "TypeScript", "Next.js", "Tailwind CSS",
			"gRPC", "GraphQL", "Python", "Terraform", "AWS",
		},
		Projects: []profile.Project{
			{
				Title:       "Ledgerline - Expense Tracking API",
				Description: "Multi-currency expense tracking service with double-entry bookkeeping, CSV import pipelines and a reporting layer aggregating spend per category and month.",
				Links: profile.ProjectLinks{
					GitHub: "https://github.com/linhpham-dev/ledgerline",
					Demo:   "https://ledgerline-demo.example.com",
				},
				Technologies: []string{"Go", "PostgreSQL", "Redis", "Docker"},
			},
			{
				Title:       "Shelfmate - Reading Tracker",
				Description: "Full-stack reading tracker with shelf management, progress charts and social sharing. Server-rendered pages hydrate into a React client.",
				Links: profile.ProjectLinks{
					GitHub: "https://github.com/linhpham-dev/shelfmate",
					Demo:   "https://shelfmate.example.com",
				},
				Technologies: []string{"React 18", "TypeScript", "Next.js", "Tailwind CSS", "GraphQL"},
			},
			{
				Title:       "Fleetwatch - Delivery Telemetry Pipeline",
				Description: "Ingests vehicle telemetry over Kafka, materializes per-route aggregates into Postgres and alerts on anomalies via a rules engine.",
				Links: profile.ProjectLinks{
					GitHub: "https://github.com/linhpham-dev/fleetwatch",
				},
				Technologies: []string{"Go", "Kafka", "PostgreSQL", "Kubernetes", "Terraform"},
			},
		},
		Work: []profile.Work{
			{
				Company:     "Skyline Logistics",
				Position:    "Backend Engineer",
				StartDate:   date("2023-07-01"),
				EndDate:     nil, // present
				Description: "Owns the order-routing services and the telemetry ingestion pipeline.",
			},
			{
				Company:     "Mekong Digital",
				Position:    "Software Engineering Intern",
				StartDate:   date("2022-06-01"),
				EndDate:     date("2022-12-31"),
				Description: "Built internal dashboards and automated report generation.",
			},
		},
		Links: profile.Links{
			GitHub:    "https://github.com/linhpham-dev",
			LinkedIn:  "https://www.linkedin.com/in/linh-pham-dev",
			Portfolio: "https://linhpham.example.com",
			Resume:    "https://linhpham.example.com/resume.pdf",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func main() {
	fmt.Println("seeding profiles...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	if _, err := pool.Exec(ctx, `DELETE FROM profiles`); err != nil {
		log.Fatalf("cannot clear profiles: %v", err)
	}

	p := sampleProfile()

	marshal := func(v any) []byte {
		b, err := json.Marshal(v)
		if err != nil {
			log.Fatalf("cannot marshal seed document: %v", err)
		}
		return b
	}

	query := `
		INSERT INTO profiles (id, name, email, education, skills, projects, work, links, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = pool.Exec(ctx, query,
		p.ID, p.Name, p.Email,
		marshal(p.Education), marshal(p.Skills), marshal(p.Projects), marshal(p.Work), marshal(p.Links),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		log.Fatalf("cannot insert seed profile: %v", err)
	}

	fmt.Printf("seeded profile '%s' (%s)\n", p.Name, p.ID)
}
