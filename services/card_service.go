// services/card_service.go
package services

import (
	"context"
	"errors"

	"kartoyunu.app/configs/configslog"
	"kartoyunu.app/pkg/validation"
	"kartoyunu.app/repositories"
	"kartoyunu.app/schemas"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound      CardServiceError = "kart bulunamadı"
	ErrCardNameTaken     CardServiceError = "bu isimde bir kart zaten mevcut"
	ErrCardTypeReference CardServiceError = "referans verilen kart türü mevcut değil"
)

// ICardService kart işlemleri için arayüz.
// Transport katmanı yalnızca bu sözleşmeye bağımlıdır.
type ICardService interface {
	GetAllCards(ctx context.Context) (*schemas.CardListResponse, error)
	GetCardByID(ctx context.Context, id uint) (*schemas.CardResponse, error)
	GetCardsByCardType(ctx context.Context, cardTypeID uint) (*schemas.CardListResponse, error)
	CreateCard(ctx context.Context, input schemas.CardCreateInput) (*schemas.CardResponse, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo     repositories.ICardRepository
	typeRepo repositories.ICardTypeRepository // create'teki referans ön kontrolü için
}

// NewCardService yeni bir CardService örneği oluşturur.
// Bağımlılıklar constructor injection ile verilir; global bağlantı erişimi yoktur.
func NewCardService(db *gorm.DB) ICardService {
	return &CardService{
		repo:     repositories.NewCardRepository(db),
		typeRepo: repositories.NewCardTypeRepository(db),
	}
}

// GetAllCards tüm kartları liste zarfı içinde döndürür.
func (s *CardService) GetAllCards(ctx context.Context) (*schemas.CardListResponse, error) {
	cards, err := s.repo.GetAllCards(ctx)
	if err != nil {
		return nil, err
	}
	return schemas.NewCardListResponse(cards), nil
}

// GetCardByID kartı iç içe kart türüyle birlikte döndürür.
func (s *CardService) GetCardByID(ctx context.Context, id uint) (*schemas.CardResponse, error) {
	card, err := s.repo.GetCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	resp := schemas.NewCardResponse(card)
	return &resp, nil
}

// GetCardsByCardType verilen türe ait kartları döndürür. Türün varlığı burada
// kontrol edilmez: bilinmeyen tür hata değil boş liste üretir.
func (s *CardService) GetCardsByCardType(ctx context.Context, cardTypeID uint) (*schemas.CardListResponse, error) {
	cards, err := s.repo.FindCardsByCardTypeID(ctx, cardTypeID)
	if err != nil {
		return nil, err
	}
	return schemas.NewCardListResponse(cards), nil
}

// CreateCard girdiyi doğrular, referans verilen kart türünün varlığını kontrol
// eder, kaydeder ve projeksiyonunu döndürür. Tür yoksa insert hiç denenmez;
// ön kontrol ile insert arasındaki yarışta storage'ın FK kısıtı aynı servis
// hatasına çevrilir.
func (s *CardService) CreateCard(ctx context.Context, input schemas.CardCreateInput) (*schemas.CardResponse, error) {
	if err := validation.Validate(input); err != nil {
		return nil, err
	}

	// 1. Referans ön kontrolü
	cardType, err := s.typeRepo.GetCardTypeByID(ctx, input.CardTypeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardTypeReference
		}
		return nil, err
	}

	// 2. Kaydet
	card := input.ToModel()
	if err := s.repo.CreateCard(ctx, &card); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrCardNameTaken
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, ErrCardTypeReference
		}
		configslog.Log.Error("CreateCard: Repo error", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}

	// 3. Tekrar sorgulamak yerine ön kontrolde çekilen türü kayda iliştir
	card.CardType = *cardType

	configslog.SLog.Infof("Kart başarıyla oluşturuldu: %s (ID %d, tür: %s)", card.Name, card.ID, cardType.Name)
	resp := schemas.NewCardResponse(&card)
	return &resp, nil
}

var _ ICardService = (*CardService)(nil)
