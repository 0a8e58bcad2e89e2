package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/knsalim/paanshop-api/auth"
	"github.com/knsalim/paanshop-api/configs"
	"github.com/knsalim/paanshop-api/realtime"
	"github.com/knsalim/paanshop-api/store"
)

// Deps carries everything the route groups need wired in.
type Deps struct {
	Store    store.Store
	Verifier auth.Verifier
	Pending  *realtime.PendingWatcher
	Hub      *realtime.Hub
	Log      *logrus.Logger
	Cfg      configs.Config
}

// SetupRoutes is the single entry-point that wires up Auth, Menu, User, and
// Admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// 1️⃣ Public routes (no middleware)
	SetupAuthRoutes(r, d)
	SetupMenuRoutes(r, d)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, d)

	// 3️⃣ Admin routes (JWT + role-protected)
	SetupAdminRoutes(r, d)
}
