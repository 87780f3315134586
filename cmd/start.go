package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kappa-h/fibulopedia/core/config"
	"github.com/Kappa-h/fibulopedia/core/content"
	"github.com/Kappa-h/fibulopedia/core/loader"
	"github.com/Kappa-h/fibulopedia/core/logger"
	"github.com/Kappa-h/fibulopedia/core/middleware/auth"
	"github.com/Kappa-h/fibulopedia/core/middleware/rayid"

	"github.com/Kappa-h/fibulopedia/feature/equipment"
	"github.com/Kappa-h/fibulopedia/feature/integrity"
	"github.com/Kappa-h/fibulopedia/feature/monsters"
	"github.com/Kappa-h/fibulopedia/feature/quests"
	"github.com/Kappa-h/fibulopedia/feature/search"
	"github.com/Kappa-h/fibulopedia/feature/serverinfo"
	"github.com/Kappa-h/fibulopedia/feature/spells"
	"github.com/Kappa-h/fibulopedia/feature/weapons"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/Kappa-h/fibulopedia/docs/swagger"
)

// @title Fibulopedia API
// @version 1.0
// @description API for browsing Fibula Project game content.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the wiki server",
	Long:  `Loads the content store and starts the HTTP server with all features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Load Content Store
		store := loadStore(cfg, logg)

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(weapons.NewFeature(store, logg))
		mgr.Register(equipment.NewFeature(store, logg))
		mgr.Register(spells.NewFeature(store, logg))
		mgr.Register(monsters.NewFeature(store, logg))
		mgr.Register(quests.NewFeature(store, logg))
		mgr.Register(serverinfo.NewFeature(store, logg))
		mgr.Register(search.NewFeature(store, logg))
		mgr.Register(integrity.NewFeature(store, logg))

		// Middleware Registration
		// RayID must be first to trace everything.
		app.Use(rayid.New())

		// Request logging with Zap + RayID.
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Optional API key protection. A public wiki normally leaves this off.
		if cfg.Server.IsProtected() {
			app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		}

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// loadStore builds the content store from the configured directory, falling
// back to the embedded default content set.
func loadStore(cfg *config.Config, logg *zap.Logger) *content.Store {
	if cfg.Content.Dir != "" {
		logg.Info("Loading content", zap.String("dir", cfg.Content.Dir))
		return content.Load(cfg.Content.Dir, logg)
	}
	logg.Info("Loading embedded default content")
	return content.LoadDefault(logg)
}

func init() {
	RootCmd.AddCommand(startCmd)
}
