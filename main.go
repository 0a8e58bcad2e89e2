package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/knsalim/paanshop-api/auth"
	"github.com/knsalim/paanshop-api/configs"
	"github.com/knsalim/paanshop-api/realtime"
	"github.com/knsalim/paanshop-api/routes"
	"github.com/knsalim/paanshop-api/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	log.Println("✅ Starting application...")

	// Load environment variables
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Firebase app backs both token verification and the Firestore store
	app, err := auth.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Error initializing Firebase app: %v", err)
	}

	verifier, err := auth.NewFirebaseVerifier(ctx, app, cfg.FirebaseProjectID)
	if err != nil {
		log.Fatalf("❌ Error getting Firebase Auth client: %v", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("❌ Error getting Firestore client: %v", err)
	}
	defer fsClient.Close()

	st := store.NewFirestore(fsClient, log)

	// Admin console feed + alert tone, driven by the pending-orders queue
	hub := realtime.NewHub(log)
	watcher := realtime.NewPendingWatcher(st, realtime.NewHubAlerter(hub), hub, log)
	if err := watcher.Start(ctx); err != nil {
		log.Fatalf("❌ Failed to watch pending orders: %v", err)
	}
	defer watcher.Close()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Store:    st,
		Verifier: verifier,
		Pending:  watcher,
		Hub:      hub,
		Log:      log,
		Cfg:      cfg,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
