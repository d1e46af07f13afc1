package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"kartoyunu.app/configs"
	"kartoyunu.app/configs/configsdatabase"
	"kartoyunu.app/configs/configslog"
	"kartoyunu.app/database"
	"kartoyunu.app/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		panic(err)
	}

	configslog.InitLogger(cfg.Debug)
	defer configslog.SyncLogger()

	db, err := configsdatabase.Connect(cfg)
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}
	defer configsdatabase.Close(db)

	// Eksik tablolar her açılışta oluşturulur; mevcut şemaya dokunulmaz.
	if err := database.Initialize(db, true, false); err != nil {
		configslog.Log.Fatal("Veritabanı şeması hazırlanamadı", zap.Error(err))
	}

	// Kart görsellerinin servis edileceği dizin hazır olsun
	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		configslog.Log.Warn("Görsel dizini oluşturulamadı", zap.String("dir", cfg.ImagesDir), zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
	routes.SetupRoutes(app, db, cfg)

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			configslog.Log.Fatal("HTTP sunucusu başlatılamadı", zap.Error(err))
		}
	}()
	configslog.SLog.Infof("%s %s adresinde dinliyor", cfg.AppName, cfg.ListenAddr)

	// Graceful shutdown: SIGINT/SIGTERM gelince aktif istekler tamamlanır.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
	if err := app.Shutdown(); err != nil {
		configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
	}
}
