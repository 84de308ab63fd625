package main

import (
	"fmt"
	"log"
	"os"

	"github.com/SurveyOS/SurveyOS-api/internal/auth"
	"github.com/SurveyOS/SurveyOS-api/internal/config"
	"github.com/SurveyOS/SurveyOS-api/internal/model"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const version = "0.3.1"

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (falls back to DB_* env vars)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	seedAdminCmd.Flags().String("name", "Admin", "Admin display name")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedAdminCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "surveyctl",
	Short: "surveyctl manages the SurveyOS database",
	Long:  `surveyctl runs schema migrations and seeds bootstrap data for the SurveyOS API.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Create or update the tables backing users, companies, workspaces, surveys, questions, and themes.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()

		// citext backs case-insensitive email uniqueness, pgcrypto provides
		// gen_random_uuid on Postgres < 13.
		for _, ext := range []string{"citext", "pgcrypto"} {
			if err := db.Exec(fmt.Sprintf("CREATE EXTENSION IF NOT EXISTS %s", ext)).Error; err != nil {
				log.Fatalf("Failed to create extension %s: %v", ext, err)
			}
		}

		err := db.AutoMigrate(
			&model.User{},
			&model.Company{},
			&model.Workspace{},
			&model.Survey{},
			&model.SurveyHistory{},
			&model.SurveyTemplate{},
			&model.Question{},
			&model.Theme{},
			&model.ThemeHistory{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin [email] [password]",
	Short: "Create an initial admin user",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		email, password := args[0], args[1]
		name, _ := cmd.Flags().GetString("name")

		db := openDatabase()

		hasher := auth.NewPasswordHasher()
		hash, err := hasher.Hash(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user := &model.User{
			ID:           uuid.New(),
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			CompanyRole:  model.RoleAdmin,
		}
		if err := db.Create(user).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}

		fmt.Printf("Created admin user %s (%s)\n", user.Email, user.ID)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the surveyctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("surveyctl version %s\n", version)
	},
}

func openDatabase() *gorm.DB {
	dsn := dbConnString
	if dsn == "" {
		cfg := config.Load()
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.SSLMode,
			cfg.Database.SearchPath,
		)
	}

	logLevel := logger.Silent
	if verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
