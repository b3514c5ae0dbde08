package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/audit"
	"github.com/garagehub/garage-api/internal/authz"
	"github.com/garagehub/garage-api/internal/config"
	"github.com/garagehub/garage-api/internal/handlers"
	infraRepo "github.com/garagehub/garage-api/internal/infra/repository"
	"github.com/garagehub/garage-api/internal/middleware"
	ucTransaction "github.com/garagehub/garage-api/internal/usecase/transaction"
	ucUser "github.com/garagehub/garage-api/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, catalog *authz.Catalog) {

	// ------------------------------
	// INFRA (SINGLETONS)
	// ------------------------------
	transactionRepo := infraRepo.NewTransactionGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// USE CASES — TRANSACTIONS
	// ------------------------------
	createTransactionUC := ucTransaction.NewCreateTransaction(
		transactionRepo,
		auditDispatcher,
	)

	updateTransactionUC := ucTransaction.NewUpdateTransaction(
		transactionRepo,
		auditDispatcher,
	)

	removeTransactionUC := ucTransaction.NewRemoveTransaction(
		transactionRepo,
		auditDispatcher,
	)

	// ------------------------------
	// USE CASES — USERS
	// ------------------------------
	registerUserUC := ucUser.NewRegisterUser(userRepo)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg, registerUserUC)
	meHandler := handlers.NewMeHandler(db)
	garageHandler := handlers.NewGarageHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db)
	sparepartHandler := handlers.NewSparepartHandler(db)
	userHandler := handlers.NewUserHandler(db)

	transactionHandler := handlers.NewTransactionHandler(
		transactionRepo,
		createTransactionUC,
		updateTransactionUC,
		removeTransactionUC,
	)

	authRequired := middleware.Auth(cfg, userRepo)
	// "Any role" endpoints take the set from the catalog instead of a
	// hard-coded list, so a newly seeded role needs no route change.
	anyKnownRole := middleware.RequireKnownRole(catalog)

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (public)
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(authRequired)
		{
			secured.GET("/me", anyKnownRole, meHandler.GetMe)

			// ------------------------------
			// GARAGES
			// ------------------------------
			secured.GET("/garages", anyKnownRole, garageHandler.List)
			secured.GET("/garages/:id", anyKnownRole, garageHandler.Get)
			secured.POST("/garages", middleware.RequireRoles(authz.RoleAdmin), garageHandler.Create)
			secured.PUT("/garages/:id", middleware.RequireRoles(authz.RoleAdmin), garageHandler.Update)
			secured.DELETE("/garages/:id", middleware.RequireRoles(authz.RoleAdmin), garageHandler.Delete)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", anyKnownRole, serviceHandler.List)
			secured.GET("/services/:id", anyKnownRole, serviceHandler.Get)
			secured.POST("/services", middleware.RequireRoles(authz.RoleAdmin), serviceHandler.Create)
			secured.PUT("/services/:id", middleware.RequireRoles(authz.RoleAdmin), serviceHandler.Update)
			secured.DELETE("/services/:id", middleware.RequireRoles(authz.RoleAdmin), serviceHandler.Delete)

			// ------------------------------
			// SPAREPARTS
			// ------------------------------
			sparepartRoles := middleware.RequireRoles(authz.RoleAdmin, authz.RoleTechnician)
			secured.GET("/spareparts", sparepartRoles, sparepartHandler.List)
			secured.GET("/spareparts/:id", sparepartRoles, sparepartHandler.Get)
			secured.POST("/spareparts", sparepartRoles, sparepartHandler.Create)
			secured.PUT("/spareparts/:id", sparepartRoles, sparepartHandler.Update)
			secured.DELETE("/spareparts/:id", sparepartRoles, sparepartHandler.Delete)

			// ------------------------------
			// TRANSACTIONS
			// ------------------------------
			secured.GET("/transactions", anyKnownRole, transactionHandler.List)
			secured.GET("/transactions/:id", anyKnownRole, transactionHandler.Get)
			secured.POST("/transactions", middleware.RequireRoles(authz.RoleTechnician), transactionHandler.Create)
			secured.PUT("/transactions/:id", middleware.RequireRoles(authz.RoleTechnician), transactionHandler.Update)
			secured.DELETE("/transactions/:id", middleware.RequireRoles(authz.RoleAdmin), transactionHandler.Delete)

			// ------------------------------
			// USERS
			// ------------------------------
			adminOnly := middleware.RequireRoles(authz.RoleAdmin)
			secured.GET("/users", adminOnly, userHandler.List)
			secured.GET("/users/:id", adminOnly, userHandler.Get)
			secured.POST("/users", adminOnly, userHandler.Create)
			secured.PUT("/users/:id", adminOnly, userHandler.Update)
			secured.DELETE("/users/:id", adminOnly, userHandler.Delete)
		}
	}
}
