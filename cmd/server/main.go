package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yishak-cs/tea_alchemy/internal/catalog"
	"github.com/yishak-cs/tea_alchemy/internal/database"
	"github.com/yishak-cs/tea_alchemy/internal/handlers"
	"github.com/yishak-cs/tea_alchemy/internal/logging"
	"github.com/yishak-cs/tea_alchemy/internal/metrics"
	"github.com/yishak-cs/tea_alchemy/internal/services"
	"github.com/yishak-cs/tea_alchemy/pkg/helper"
)

func main() {
	envErr := godotenv.Load()

	config := helper.LoadAppConfig()
	logging.Init(logging.Config{Level: config.LogLevel, Format: config.LogFormat})
	if envErr != nil {
		logging.Debug().Err(envErr).Msg("No .env file loaded, using process environment")
	}

	// The catalog must be consistent before anything is served.
	store, err := loadCatalog(config.CatalogFile)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}
	for _, a := range store.AsymmetricIncompatibilities() {
		logging.Warn().
			Str("outcome", a.OutcomeID).
			Str("flavor", a.FlavorID).
			Str("listed", a.ListedID).
			Msg("Flavor incompatibility is only listed in one direction")
	}
	logging.Info().
		Int("products", len(store.ListProducts())).
		Int("outcomes", len(store.ListBlendOutcomes())).
		Str("source", catalogSource(config.CatalogFile)).
		Msg("Catalog loaded")

	var graph handlers.HealthChecker
	if config.GraphSyncConfigured() {
		neo4jClient, err := database.NewNeo4jClient(config.Neo4j)
		if err != nil {
			logging.Error().Err(err).Msg("Failed to connect to Neo4j, catalog graph mirror disabled")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := neo4jClient.Close(ctx); err != nil {
					logging.Error().Err(err).Msg("Error closing Neo4j connection")
				}
			}()
			graph = neo4jClient
			syncCatalogGraph(neo4jClient, store)
		}
	}

	recommendationService := services.NewRecommendationService(store)
	apiHandler := handlers.NewAPIHandler(store, recommendationService, graph)

	gin.SetMode(config.GinMode)
	router := handlers.NewRouter(apiHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Port),
		Handler: router,
	}

	go func() {
		logging.Info().Str("port", config.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Server forced to shutdown")
		return
	}

	logging.Info().Msg("Server exited properly")
}

func loadCatalog(path string) (*catalog.Store, error) {
	def := catalog.Default()
	if path != "" {
		var err error
		def, err = catalog.LoadDefinitionFile(path)
		if err != nil {
			return nil, err
		}
	}
	return catalog.New(def)
}

func catalogSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// syncCatalogGraph mirrors the catalog into Neo4j. Routes never read the mirror,
// so a failure is logged and startup continues.
func syncCatalogGraph(client *database.Neo4jClient, store *catalog.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	exporter := database.NewCatalogGraphExporter(client)
	start := time.Now()
	err := exporter.Export(ctx, store)
	metrics.RecordGraphSync(time.Since(start), err)
	if err != nil {
		logging.Error().Err(err).Msg("Catalog graph export failed")
		return
	}

	status, err := exporter.Status(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to read catalog graph status")
		return
	}
	logging.Info().Interface("nodes", status).Msg("Catalog graph mirror ready")
}
