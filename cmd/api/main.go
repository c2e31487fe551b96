package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/jvdzdigital/storefront/internal/app"
	"github.com/jvdzdigital/storefront/internal/cart"
	"github.com/jvdzdigital/storefront/internal/catalog"
	"github.com/jvdzdigital/storefront/internal/chat"
	"github.com/jvdzdigital/storefront/internal/checkout"
	"github.com/jvdzdigital/storefront/internal/config"
	"github.com/jvdzdigital/storefront/internal/promo"
)

// main wires dependencies and starts the storefront. All state lives in
// memory; the spreadsheet endpoint and the Gemini API stay external.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	initLogger(cfg.LogLevel)

	store := catalog.NewStore(catalog.FallbackInventory())
	catalogClient := catalog.NewClient(cfg.OrderEndpoint, nil)
	catalogService := catalog.NewService(store, catalogClient)

	ledger := cart.NewLedger()
	cartService := cart.NewService(ledger, catalogService)

	evaluator := promo.NewEvaluator(promo.DefaultCodes())

	state := app.NewState(ledger)

	orderClient := checkout.NewClient(cfg.OrderEndpoint, nil)
	checkoutService := checkout.NewService(ledger, evaluator, orderClient, state)

	chatService := chat.NewService(chat.NewGeminiModel(cfg.GeminiAPIKey, cfg.ChatModel))

	// One remote catalog read per process lifetime. A misconfigured endpoint
	// or a failed fetch keeps the bundled inventory and raises the banner.
	if err := cfg.ValidateEndpoint(); err != nil {
		state.SetBanner(err.Error())
	} else if err := catalogService.Load(context.Background()); err != nil {
		state.SetBanner("CONNECTION ERROR: could not reach the catalog endpoint. Browsing the bundled inventory.")
	}

	fiberApp := fiber.New()
	setupCORS(fiberApp)

	catalog.NewHandler(catalogService).RegisterPublicRoutes(fiberApp)
	cart.NewHandler(cartService).RegisterPublicRoutes(fiberApp)
	promo.NewHandler(evaluator).RegisterPublicRoutes(fiberApp)
	checkout.NewHandler(checkoutService).RegisterPublicRoutes(fiberApp)
	chat.NewHandler(chatService).RegisterPublicRoutes(fiberApp)
	app.NewHandler(state).RegisterPublicRoutes(fiberApp)

	slog.Info("starting storefront", "addr", cfg.Addr)
	if err := fiberApp.Listen(cfg.Addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func initLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}
