package migrations

import (
	"kartoyunu.app/configs/configslog"
	"kartoyunu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateCardTypesTable card_types tablosunu yoksa oluşturur.
// Mevcut tabloya hiçbir koşulda dokunulmaz; kolon ekleme/değiştirme yapılmaz.
func MigrateCardTypesTable(db *gorm.DB) error {
	if db.Migrator().HasTable(&models.CardType{}) {
		configslog.SLog.Info("card_types table already exists, skipping")
		return nil
	}
	if err := db.Migrator().CreateTable(&models.CardType{}); err != nil {
		configslog.Log.Error("Failed to create card_types table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("card_types table created successfully")
	return nil
}
