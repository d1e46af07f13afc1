package seeders

import (
	"errors"

	"kartoyunu.app/configs/configslog"
	"kartoyunu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedCards başlangıç kartlarını ekler. Kartlar türlerine adla bağlanır;
// SeedCardTypes bu seeder'dan önce çalışmış olmalıdır. Adı mevcut olan
// kart atlanır.
func SeedCards(db *gorm.DB) error {
	cardsToSeed := []struct {
		TypeName string
		Card     models.Card
	}{
		{"Elemental", models.Card{Name: "Alev İblisi", Description: "Küçük ama sinir bozucu bir ateş yaratığı", ManaPrice: 2, HP: 30, Attack: 40}},
		{"Elemental", models.Card{Name: "Buz Golemi", Description: "Yavaş, soğuk ve inatçı derecede dayanıklı", ManaPrice: 6, HP: 90, Attack: 35}},
		{"Ölümsüz Ordu", models.Card{Name: "Kadim Hortlak", Description: "Her düşüşünde biraz daha öfkeli geri döner", ManaPrice: 4, HP: 55, Attack: 60}},
		{"Savaşçılar", models.Card{Name: "Kale Muhafızı", Description: "Cephe hattını tek başına tutabilen kalkan ustası", ManaPrice: 5, HP: 100, Attack: 25}},
	}

	var createdCount int64 = 0
	var errorOccurred bool = false

	configslog.SLog.Info("Kartlar seed işlemi başlıyor...")

	for _, item := range cardsToSeed {
		var existingCard models.Card
		result := db.Where("name = ?", item.Card.Name).First(&existingCard)

		if result.Error == nil {
			configslog.SLog.Debugf("Kart '%s' zaten mevcut, oluşturma atlanıyor.", item.Card.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Kart kontrol edilirken veritabanı hatası",
				zap.String("name", item.Card.Name),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		// Tür ID'sini adla çöz
		var cardType models.CardType
		if err := db.Where("name = ?", item.TypeName).First(&cardType).Error; err != nil {
			configslog.Log.Error("Kartın türü bulunamadı",
				zap.String("card_name", item.Card.Name),
				zap.String("type_name", item.TypeName),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}

		card := item.Card
		card.CardTypeID = cardType.ID
		if err := db.Create(&card).Error; err != nil {
			configslog.Log.Error("Kart oluşturulamadı",
				zap.String("name", card.Name),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Kart '%s' başarıyla oluşturuldu (ID: %d, tür: %s).", card.Name, card.ID, cardType.Name)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni kart seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm kartlar zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("kartlar seed edilirken en az bir hata oluştu")
	}
	return nil
}
