// repositories/card_type_repository.go
package repositories

import (
	"context"
	"errors"

	"kartoyunu.app/configs/configslog"
	"kartoyunu.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardTypeRepository kart türü veritabanı işlemleri için arayüz.
type ICardTypeRepository interface {
	GetAllCardTypes(ctx context.Context) ([]models.CardType, error)
	GetCardTypeByID(ctx context.Context, id uint) (*models.CardType, error)
	CreateCardType(ctx context.Context, cardType *models.CardType) error
}

// CardTypeRepository ICardTypeRepository arayüzünü uygular.
type CardTypeRepository struct {
	db *gorm.DB
}

// NewCardTypeRepository yeni bir CardTypeRepository örneği oluşturur.
// Bağlantının yaşam döngüsü çağırana aittir.
func NewCardTypeRepository(db *gorm.DB) ICardTypeRepository {
	return &CardTypeRepository{db: db}
}

// GetAllCardTypes tüm kart türlerini listeler.
func (r *CardTypeRepository) GetAllCardTypes(ctx context.Context) ([]models.CardType, error) {
	var results []models.CardType
	if err := r.db.WithContext(ctx).Find(&results).Error; err != nil {
		configslog.Log.Error("CardTypeRepository.GetAllCardTypes: DB error", zap.Error(err))
		return nil, err
	}
	return results, nil
}

// GetCardTypeByID kart türünü ID ile bulur. Kayıt yoksa ErrNotFound döner.
func (r *CardTypeRepository) GetCardTypeByID(ctx context.Context, id uint) (*models.CardType, error) {
	var result models.CardType
	err := r.db.WithContext(ctx).First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardTypeRepository.GetCardTypeByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &result, nil
}

// CreateCardType yeni kart türünü kaydeder; üretilen ID model üzerine yazılır.
// İş kuralları burada doğrulanmaz, girdinin şema doğrulamasından geçtiği varsayılır.
func (r *CardTypeRepository) CreateCardType(ctx context.Context, cardType *models.CardType) error {
	if cardType == nil {
		return errors.New("oluşturulacak kart türü nil olamaz")
	}
	return r.db.WithContext(ctx).Create(cardType).Error
}

// Arayüz uyumluluğu kontrolü
var _ ICardTypeRepository = (*CardTypeRepository)(nil)
