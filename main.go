package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"registro/handler"
	"registro/middleware"
	"registro/repository"
	"registro/usecase"
	"registro/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	utils.InitValidator()
}

// buildDomains wires one adapter/store/form chain per domain against the
// configured storage backend. Remote and local backends are
// interchangeable behind the same adapter capability.
func buildDomains() (*usecase.NotesDomain, *usecase.ExpensesDomain, *usecase.WikiDomain) {
	backend := utils.GetEnvAsString("STORAGE_BACKEND", "file")

	switch backend {
	case "mongo":
		utils.InitMongoClient()
		db := utils.MongoClient.Database(utils.GetEnvAsString("MONGO_DB", "registro"))
		return usecase.NewNotesDomain(repository.NewNotesAdapter(db)),
			usecase.NewExpensesDomain(repository.NewExpensesAdapter(db)),
			usecase.NewWikiDomain(repository.NewWikiAdapter(db))

	case "redis":
		kv, err := repository.NewRedisStore(utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379"))
		if err != nil {
			log.Fatalf("Failed to initialize Redis storage: %v", err)
		}
		return usecase.NewNotesDomain(repository.NewLocalNotesAdapter(kv)),
			usecase.NewExpensesDomain(repository.NewLocalExpensesAdapter(kv)),
			usecase.NewWikiDomain(repository.NewLocalWikiAdapter(kv))

	case "file":
		kv, err := repository.NewFileStore(utils.GetEnvAsString("DATA_DIR", "data"))
		if err != nil {
			log.Fatalf("Failed to initialize file storage: %v", err)
		}
		return usecase.NewNotesDomain(repository.NewLocalNotesAdapter(kv)),
			usecase.NewExpensesDomain(repository.NewLocalExpensesAdapter(kv)),
			usecase.NewWikiDomain(repository.NewLocalWikiAdapter(kv))

	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q (expected mongo, redis or file)", backend)
		return nil, nil, nil
	}
}

func setupRouter(
	notesDomain *usecase.NotesDomain,
	expensesDomain *usecase.ExpensesDomain,
	wikiDomain *usecase.WikiDomain,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		utils.Success(c, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	statsHandler := handler.NewStatsHandler(notesDomain, expensesDomain, wikiDomain)

	// Category/vendor lists change rarely; clients may cache them briefly.
	categoryCache := middleware.CacheControlMiddleware(
		strconv.Itoa(utils.GetEnvAsInt("CATEGORY_CACHE_SECONDS", 30)))

	api := router.Group("/api")
	{
		api.GET("/stats", statsHandler.GetStats)

		notes := api.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.ListNotesHandler(c, notesDomain)
			})
			notes.GET("/categories", categoryCache, func(c *gin.Context) {
				handler.NoteCategoriesHandler(c, notesDomain)
			})
			notes.POST("", func(c *gin.Context) {
				handler.SubmitNoteHandler(c, notesDomain)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesDomain)
			})
			notes.GET("/:id/edit", func(c *gin.Context) {
				handler.EditNoteHandler(c, notesDomain)
			})
			notes.POST("/form/clear", func(c *gin.Context) {
				handler.ClearNoteFormHandler(c, notesDomain)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesDomain)
			})
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", func(c *gin.Context) {
				handler.ListExpensesHandler(c, expensesDomain)
			})
			expenses.GET("/categories", categoryCache, func(c *gin.Context) {
				handler.ExpenseCategoriesHandler(c, expensesDomain)
			})
			expenses.GET("/summary", func(c *gin.Context) {
				handler.ExpenseSummaryHandler(c, expensesDomain)
			})
			expenses.POST("", func(c *gin.Context) {
				handler.SubmitExpenseHandler(c, expensesDomain)
			})
			expenses.PUT("/:id", func(c *gin.Context) {
				handler.UpdateExpenseHandler(c, expensesDomain)
			})
			expenses.GET("/:id/edit", func(c *gin.Context) {
				handler.EditExpenseHandler(c, expensesDomain)
			})
			expenses.POST("/form/clear", func(c *gin.Context) {
				handler.ClearExpenseFormHandler(c, expensesDomain)
			})
			expenses.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteExpenseHandler(c, expensesDomain)
			})
		}

		wiki := api.Group("/wiki")
		{
			wiki.GET("", func(c *gin.Context) {
				handler.ListWikiCommandsHandler(c, wikiDomain)
			})
			wiki.GET("/vendors", categoryCache, func(c *gin.Context) {
				handler.WikiVendorsHandler(c, wikiDomain)
			})
			wiki.POST("", func(c *gin.Context) {
				handler.SubmitWikiCommandHandler(c, wikiDomain)
			})
			wiki.PUT("/:id", func(c *gin.Context) {
				handler.UpdateWikiCommandHandler(c, wikiDomain)
			})
			wiki.GET("/:id/edit", func(c *gin.Context) {
				handler.EditWikiCommandHandler(c, wikiDomain)
			})
			wiki.POST("/form/clear", func(c *gin.Context) {
				handler.ClearWikiFormHandler(c, wikiDomain)
			})
			wiki.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteWikiCommandHandler(c, wikiDomain)
			})
		}
	}

	return router
}

func main() {
	notesDomain, expensesDomain, wikiDomain := buildDomains()

	// One-time startup load per domain; failures degrade to empty
	// collections and the server still comes up.
	loadCtx, cancel := context.WithTimeout(context.Background(),
		utils.GetEnvAsDuration("LOAD_TIMEOUT", 30*time.Second))
	notesDomain.Store.Load(loadCtx)
	expensesDomain.Store.Load(loadCtx)
	wikiDomain.Store.Load(loadCtx)
	cancel()

	router := setupRouter(notesDomain, expensesDomain, wikiDomain)

	port := utils.GetEnvAsString("PORT", "8080")
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-signalChan
		log.Printf("Caught signal %s, shutting down", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			utils.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Listening on :%s", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server shutdown complete")
}
