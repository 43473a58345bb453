package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"metacatalog/internal/config"
	"metacatalog/internal/database"
	"metacatalog/internal/handlers"
	"metacatalog/internal/profiler"
	"metacatalog/internal/repositories"
	"metacatalog/internal/routes"
	"metacatalog/internal/services"
)

type Server struct {
	HTTP *http.Server
	Pool *pgxpool.Pool
}

// New loads configuration, prepares the database, wires every layer and
// returns a server ready to listen.
func New(logger *zap.SugaredLogger) (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := database.EnsureDatabaseExists(cfg, logger); err != nil {
		return nil, fmt.Errorf("ensure database: %w", err)
	}

	pool, err := database.Connect(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := database.RunMigrations(pool, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	lobRepo := repositories.NewLOBRepository(pool)
	areaRepo := repositories.NewSubjectAreaRepository(pool)
	databaseRepo := repositories.NewLogicalDatabaseRepository(pool)
	tableRepo := repositories.NewTableRepository(pool)
	erRepo := repositories.NewERRepository(pool)
	entityRepo := repositories.NewEREntityRepository(pool)
	explorerRepo := repositories.NewExplorerRepository(pool)
	profileRepo := repositories.NewProfileRepository(pool)

	catalogService := services.NewCatalogService(lobRepo, areaRepo, databaseRepo, logger)
	tableService := services.NewTableService(tableRepo, databaseRepo, logger)
	erService := services.NewERService(erRepo, entityRepo, tableRepo, lobRepo, logger)
	explorerService := services.NewExplorerService(explorerRepo, logger)
	profileService := services.NewProfileService(profileRepo, tableRepo, profiler.NewGenerator(pool), logger)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	tableHandler := handlers.NewTableHandler(tableService)
	erHandler := handlers.NewERHandler(erService)
	explorerHandler := handlers.NewExplorerHandler(explorerService)
	profileHandler := handlers.NewProfileHandler(profileService)
	healthHandler := handlers.NewHealthHandler(pool)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, catalogHandler, tableHandler, erHandler, explorerHandler, profileHandler, healthHandler)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return &Server{
		HTTP: httpServer,
		Pool: pool,
	}, nil
}
