package main

import (
	"flag"

	"kartoyunu.app/configs"
	"kartoyunu.app/configs/configsdatabase"
	"kartoyunu.app/configs/configslog"
	"kartoyunu.app/database"

	"go.uber.org/zap"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "Eksik tabloları oluştur (mevcut tablolara dokunulmaz)")
	seedFlag := flag.Bool("seed", false, "Başlangıç verilerini ekle (mevcut kayıtlar atlanır)")
	flag.Parse()

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

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	if err := database.Initialize(db, *migrateFlag, *seedFlag); err != nil {
		configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu", zap.Error(err))
	}
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
