package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/rustysnake/rustysnake/pkg/config"
	"github.com/rustysnake/rustysnake/pkg/db"
	"github.com/rustysnake/rustysnake/pkg/server"
	"github.com/rustysnake/rustysnake/pkg/server/endpoints"
	"github.com/rustysnake/rustysnake/pkg/server/store"
	gormstore "github.com/rustysnake/rustysnake/pkg/server/store/gorm"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the rustysnake application server",
	Long: `Run the rustysnake application server

The server speaks the Battlesnake API v1. When DATABASE_URL is set, finished
games and per-turn moves are archived to PostgreSQL; without it the server
runs stateless.

By default, database migrations are run on startup when the archive is
enabled. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad configuration: %v\n", err)
			os.Exit(1)
		}

		eng, err := cfg.NewEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to build engine: %v\n", err)
			os.Exit(1)
		}

		// The game archive is optional. Without DATABASE_URL the server
		// runs stateless.
		var games store.GamesStore
		var health store.HealthStore
		var database *gorm.DB
		if os.Getenv("DATABASE_URL") != "" {
			noMigrate, _ := cmd.Flags().GetBool("no-migrate")
			if !noMigrate {
				log.Println("Running database migrations...")
				if err := runMigrations(); err != nil {
					fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
					os.Exit(1)
				}
			}

			database, err = db.Connect(db.Config{URL: os.Getenv("DATABASE_URL")})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
				os.Exit(1)
			}
			gs := gormstore.NewGamesStore(database)
			games, health = gs, gs
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(eng, cfg, games, health, database, host, port)

		endpoints.RegisterAll(s)

		if watch, _ := cmd.Flags().GetBool("watch-config"); watch {
			go watchConfig(s)
		}

		log.Printf("Running %s engine at http://%s:%s...\n", eng.Name(), host, port)
		log.Fatal(s.Start())
	},
}

func watchConfig(s *server.Server) {
	err := config.Watch(config.Get().ConfigFilePath(), func(cfg *config.Config) {
		eng, err := cfg.NewEngine()
		if err != nil {
			log.Printf("Config reload rejected: %v", err)
			return
		}
		s.SetConfig(cfg)
		s.SetEngine(eng)
		log.Printf("Config reloaded, engine is now %s", eng.Name())
	}, nil)
	if err != nil {
		log.Printf("Config watch stopped: %v", err)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("watch-config", false, "reload the engine when the config file changes")
}
