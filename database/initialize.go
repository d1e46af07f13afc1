package database

import (
	"kartoyunu.app/configs/configslog"
	"kartoyunu.app/database/migrations"
	"kartoyunu.app/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyon ve seed adımlarını tek transaction içinde çalıştırır.
// Adımlardan biri başarısız olursa işlem geri alınır ve hata döner.
func Initialize(db *gorm.DB, migrate bool, seed bool) error {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Error("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			tx.Rollback()
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := RunSeeders(tx); err != nil {
			tx.Rollback()
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

// RunMigrationsInOrder tabloları FK bağımlılık sırasına göre oluşturur:
// önce card_types, sonra ona referans veren cards.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> CardType migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateCardTypesTable(db); err != nil {
		configslog.Log.Error("card_types tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> CardType migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Card migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateCardsTable(db); err != nil {
		configslog.Log.Error("cards tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Card migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// RunSeeders başlangıç verilerini ekler. Kartlar türlere adla bağlandığı
// için önce kart türleri seed edilir.
func RunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> CardType seeder çalıştırılıyor...")
	if err := seeders.SeedCardTypes(db); err != nil {
		configslog.Log.Error("card_types tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> CardType seeder tamamlandı.")

	configslog.SLog.Info(" -> Card seeder çalıştırılıyor...")
	if err := seeders.SeedCards(db); err != nil {
		configslog.Log.Error("cards tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Card seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla çalıştırıldı.")
	return nil
}
