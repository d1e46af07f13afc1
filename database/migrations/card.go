package migrations

import (
	"kartoyunu.app/configs/configslog"
	"kartoyunu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateCardsTable cards tablosunu yoksa oluşturur.
// Mevcut tabloya hiçbir koşulda dokunulmaz; kolon ekleme/değiştirme yapılmaz.
// card_types tablosu FK nedeniyle bu tablodan önce oluşturulmuş olmalıdır.
func MigrateCardsTable(db *gorm.DB) error {
	if db.Migrator().HasTable(&models.Card{}) {
		configslog.SLog.Info("cards table already exists, skipping")
		return nil
	}
	if err := db.Migrator().CreateTable(&models.Card{}); err != nil {
		configslog.Log.Error("Failed to create cards table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("cards table created successfully")
	return nil
}
