package seeders

import (
	"errors"

	"kartoyunu.app/configs/configslog"
	"kartoyunu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedCardTypes başlangıç kart türlerini ekler. Adı mevcut olan tür atlanır;
// seeder tekrar tekrar çalıştırılabilir.
func SeedCardTypes(db *gorm.DB) error {
	cardTypesToSeed := []models.CardType{
		{Name: "Elemental", Description: "Ateş, su ve doğa güçlerine hükmeden varlıklar"},
		{Name: "Ölümsüz Ordu", Description: "Mezarlarından geri dönen lanetli birlikler"},
		{Name: "Savaşçılar", Description: "Yakın dövüşte üstün, dayanıklı cephe hattı"},
	}

	var createdCount int64 = 0
	var errorOccurred bool = false

	configslog.SLog.Info("Kart türleri seed işlemi başlıyor...")

	for _, typeToSeed := range cardTypesToSeed {
		var existingType models.CardType
		result := db.Where("name = ?", typeToSeed.Name).First(&existingType)

		if result.Error == nil {
			configslog.SLog.Debugf("Kart türü '%s' zaten mevcut, oluşturma atlanıyor.", typeToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Kart türü kontrol edilirken veritabanı hatası",
				zap.String("name", typeToSeed.Name),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		if err := db.Create(&typeToSeed).Error; err != nil {
			configslog.Log.Error("Kart türü oluşturulamadı",
				zap.String("name", typeToSeed.Name),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Kart türü '%s' başarıyla oluşturuldu (ID: %d).", typeToSeed.Name, typeToSeed.ID)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni kart türü seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm kart türleri zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("kart türleri seed edilirken en az bir hata oluştu")
	}
	return nil
}
