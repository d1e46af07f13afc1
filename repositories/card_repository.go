// repositories/card_repository.go
package repositories

import (
	"context"
	"errors"

	"kartoyunu.app/configs/configslog"
	"kartoyunu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository kart veritabanı işlemleri için arayüz.
type ICardRepository interface {
	GetAllCards(ctx context.Context) ([]models.Card, error)
	GetCardByID(ctx context.Context, id uint) (*models.Card, error)
	FindCardsByCardTypeID(ctx context.Context, cardTypeID uint) ([]models.Card, error)
	CreateCard(ctx context.Context, card *models.Card) error
}

// CardRepository ICardRepository arayüzünü uygular. Okuma metodlarından dönen
// her kartta CardType ilişkisi eager yüklüdür; çağıranın ikinci bir sorguya
// ihtiyacı olmaz.
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
// Bağlantının yaşam döngüsü çağırana aittir.
func NewCardRepository(db *gorm.DB) ICardRepository {
	return &CardRepository{db: db}
}

// GetAllCards tüm kartları türleriyle birlikte listeler.
func (r *CardRepository) GetAllCards(ctx context.Context) ([]models.Card, error) {
	var results []models.Card
	if err := r.db.WithContext(ctx).Preload("CardType").Find(&results).Error; err != nil {
		configslog.Log.Error("CardRepository.GetAllCards: DB error", zap.Error(err))
		return nil, err
	}
	return results, nil
}

// GetCardByID kartı ID ile bulur (CardType ile). Kayıt yoksa ErrNotFound döner.
func (r *CardRepository) GetCardByID(ctx context.Context, id uint) (*models.Card, error) {
	var result models.Card
	err := r.db.WithContext(ctx).Preload("CardType").First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.GetCardByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &result, nil
}

// FindCardsByCardTypeID verilen türe ait kartları listeler.
// Eşleşme yoksa boş liste döner; bu bir hata durumu değildir.
func (r *CardRepository) FindCardsByCardTypeID(ctx context.Context, cardTypeID uint) ([]models.Card, error) {
	if cardTypeID == 0 {
		return nil, errors.New("geçersiz CardType ID")
	}
	var results []models.Card
	err := r.db.WithContext(ctx).
		Preload("CardType").
		Where("card_type_id = ?", cardTypeID).
		Find(&results).Error
	if err != nil {
		configslog.Log.Error("CardRepository.FindCardsByCardTypeID: DB error",
			zap.Uint("card_type_id", cardTypeID), zap.Error(err))
		return nil, err
	}
	return results, nil
}

// CreateCard yeni kartı kaydeder; üretilen ID model üzerine yazılır.
// CardType ilişkisi Omit ile insert dışında tutulur: referans ön kontrolü
// servis katmanındadır, yarış durumunda storage'ın FK kısıtı devreye girer.
func (r *CardRepository) CreateCard(ctx context.Context, card *models.Card) error {
	if card == nil {
		return errors.New("oluşturulacak kart nil olamaz")
	}
	return r.db.WithContext(ctx).Omit("CardType").Create(card).Error
}

// Arayüz uyumluluğu kontrolü
var _ ICardRepository = (*CardRepository)(nil)
