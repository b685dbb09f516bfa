package main

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/faraday-ai/faraday-web/internal/auth"
	"github.com/faraday-ai/faraday-web/storage"
	"github.com/faraday-ai/faraday-web/storage/db"
)

// seedFeatures are the waitlist buckets the product pages link to.
var seedFeatures = []string{
	"General",
	"Pricing",
	"Getting Started",
	"Math Tutor",
	"Science Tutor",
	"study-groups",
	"lms-integration",
}

func newSeedCmd() *cobra.Command {
	var (
		dbPath   string
		signups  int
		contacts int
		admin    string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with fake development data",
		Long:  "Inserts fake waitlist signups and contact requests, plus an optional admin account. The service catalog itself is seeded by migrations.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(dbPath)
			if err != nil {
				return err
			}

			store, err := storage.New(config.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer store.Close()

			ctx := cmd.Context()

			for i := 0; i < signups; i++ {
				feature := seedFeatures[gofakeit.Number(0, len(seedFeatures)-1)]
				_, err := store.Queries.CreateWaitlistSignup(ctx, db.CreateWaitlistSignupParams{
					ID:      ulid.Make().String(),
					Email:   strings.ToLower(gofakeit.Email()),
					Feature: feature,
					Source:  sql.NullString{String: "seed", Valid: true},
				})
				if err != nil {
					return fmt.Errorf("failed to seed waitlist signup: %w", err)
				}
			}

			for i := 0; i < contacts; i++ {
				_, err := store.Queries.CreateContactRequest(ctx, db.CreateContactRequestParams{
					ID:    ulid.Make().String(),
					Name:  gofakeit.Name(),
					Email: strings.ToLower(gofakeit.Email()),
					Organization: sql.NullString{
						String: gofakeit.Company(),
						Valid:  true,
					},
					Message: gofakeit.Paragraph(1, 3, 12, " "),
					Status:  db.ContactStatusNew,
				})
				if err != nil {
					return fmt.Errorf("failed to seed contact request: %w", err)
				}
			}

			if admin != "" {
				authService := auth.NewService(store.Queries)
				defer authService.Stop()

				password := gofakeit.Password(true, true, true, false, false, 16)
				user, err := authService.Register(ctx, admin, password, "Site Admin")
				if err != nil {
					return fmt.Errorf("failed to create admin account: %w", err)
				}
				if err := store.Queries.SetUserAdmin(ctx, db.SetUserAdminParams{IsAdmin: true, Email: user.Email}); err != nil {
					return fmt.Errorf("failed to grant admin rights: %w", err)
				}
				fmt.Printf("Created admin %s with password %s\n", admin, password)
			}

			fmt.Printf("Seeded %d waitlist signups and %d contact requests\n", signups, contacts)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "database path (overrides DB_PATH)")
	cmd.Flags().IntVar(&signups, "signups", 25, "number of waitlist signups to create")
	cmd.Flags().IntVar(&contacts, "contacts", 10, "number of contact requests to create")
	cmd.Flags().StringVar(&admin, "admin", "", "create an admin account with this email")
	return cmd
}
