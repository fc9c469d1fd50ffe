package main

import (
	"context"
	"embed"
	"fmt"

	"eoapi/internal/database"
	"eoapi/internal/events"
	"eoapi/internal/mockserver"
	"eoapi/internal/services"
	"eoapi/internal/utils"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed all:frontend/dist
var assets embed.FS

// version is stamped into exported projects; set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := utils.LoadEnv(); err != nil {
		fmt.Println("No .env loaded:", err)
	}
	cfg := utils.LoadRuntimeConfig()
	appLogger := logger.NewDefaultLogger()

	app := NewApp()

	db, err := database.Init(database.Config{
		Path:     cfg.DBPath,
		LogLevel: gormlogger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	ring, err := services.OpenKeyring()
	if err != nil {
		appLogger.Warning(fmt.Sprintf("keyring unavailable, tokens are kept in memory: %v", err))
	}

	//Create each service
	emitter := events.RuntimeEmitter{}
	keyringService := services.NewKeyringService(ring)
	dbService := services.NewDbServices(db, keyringService)
	messageService := services.NewMessageService(emitter)
	storageService := services.NewStorageService(dbService.KeyValues, messageService, appLogger)
	notificationService := services.NewNotificationService(emitter, appLogger)
	routerService := services.NewRouterService(emitter)
	localizer := services.NewLocalizer(dbService.AppSettings)
	projectService := services.NewProjectService(dbService.Projects, dbService.ApiData)
	mockServer := mockserver.New(cfg.MockPort, dbService.ApiData, appLogger)

	features := services.NewFeatureRegistry()
	openAPI := services.OpenAPIFeature{}
	if err := features.Register(services.ExportFeatureNamespace, openAPI.Descriptor(), openAPI); err != nil {
		appLogger.Error(fmt.Sprintf("failed to register openapi export: %v", err))
	}
	hostService := services.NewHostService(features, dbService.AppSettings, mockServer)

	remoteService := services.NewRemoteService(
		storageService,
		dbService.AppSettings,
		messageService,
		notificationService,
		routerService,
		hostService,
		localizer,
		services.WithLogger(appLogger),
	)
	exportService := services.NewExportService(
		hostService,
		dbService.Projects,
		services.DialogFileSaver{},
		messageService,
		notificationService,
		localizer,
		version,
		appLogger,
	)

	app.AppSettings = dbService.AppSettings
	app.Projects = projectService
	app.Remote = remoteService
	app.mock = mockServer

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Eoapi",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Eoapi",
		},
		Logger:           appLogger,
		LogLevel:         logger.INFO,
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			dbService.StartDbServices(ctx)
			messageService.Startup(ctx)
			storageService.Startup(ctx)
			notificationService.Startup(ctx)
			routerService.Startup(ctx)
			projectService.Startup(ctx)
			remoteService.Startup(ctx)
			exportService.Startup(ctx)
			app.startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			dbService.AppSettings,
			projectService,
			storageService,
			routerService,
			remoteService,
			exportService,
			keyringService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
