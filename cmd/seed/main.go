package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/nestorahq/nestora-api/config"
	"github.com/nestorahq/nestora-api/internal/application"
	"github.com/nestorahq/nestora-api/internal/domain/repository"
	pginfra "github.com/nestorahq/nestora-api/internal/infrastructure/postgres"
	"github.com/nestorahq/nestora-api/pkg/helpers"
)

// Demo inventory and coupons for local development. Apartments are also
// pushed into the search index so /apartments/search works out of the box.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@nestora.app"
	hash, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password, name, role)
		VALUES ($1, $2, $3, 'user')
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, "Demo Tenant").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s\n", userID, email)

	apartments := []struct {
		floor int
		block string
		no    string
		rent  int
	}{
		{1, "A", "A1", 800}, {1, "A", "A2", 850}, {2, "A", "A3", 900},
		{2, "B", "B1", 1000}, {3, "B", "B2", 1100}, {3, "B", "B3", 1150},
		{4, "C", "C1", 1200}, {5, "C", "C2", 1400}, {6, "C", "C3", 1600},
	}
	for _, a := range apartments {
		if _, err := db.Exec(`
			INSERT INTO apartments (floor_no, block_name, apartment_no, rent)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (apartment_no) DO NOTHING
		`, a.floor, a.block, a.no, a.rent); err != nil {
			log.Fatalf("failed to seed apartment %s: %v", a.no, err)
		}
	}
	fmt.Printf("seeded %d apartments\n", len(apartments))

	coupons := []struct {
		code  string
		kind  string
		value float64
		desc  string
	}{
		{"NEWYEAR10", "percentage", 10, "10% off first month"},
		{"WELCOME50", "fixed_amount", 50, "50 off for new tenants"},
	}
	for _, c := range coupons {
		if _, err := db.Exec(`
			INSERT INTO coupons (coupon_id, discount_type, value, description, available)
			VALUES ($1, $2, $3, $4, true)
			ON CONFLICT (coupon_id) DO NOTHING
		`, c.code, c.kind, c.value, c.desc); err != nil {
			log.Fatalf("failed to seed coupon %s: %v", c.code, err)
		}
	}
	fmt.Printf("seeded %d coupons\n", len(coupons))

	// Index apartments into Elasticsearch
	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("failed to init elasticsearch client: %v", err)
	}
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect pool: %v", err)
	}
	defer pool.Close()

	repo := pginfra.NewApartmentRepository(pool)
	svc := application.NewApartmentService(repo, nil, "", es, cfg.ESApartmentsIndex, nil)

	all, err := repo.List(ctx, repository.ApartmentFilter{}, 0, 1000)
	if err != nil {
		log.Fatalf("failed to list apartments: %v", err)
	}
	for i := range all {
		if err := svc.Index(ctx, &all[i]); err != nil {
			log.Printf("index %s failed: %v", all[i].ApartmentNo, err)
		}
	}
	fmt.Printf("indexed %d apartments\n", len(all))
}
