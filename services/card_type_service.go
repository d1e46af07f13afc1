// services/card_type_service.go
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

// CardTypeServiceError özel servis hataları
type CardTypeServiceError string

func (e CardTypeServiceError) Error() string { return string(e) }

const (
	ErrCardTypeNotFound  CardTypeServiceError = "kart türü bulunamadı"
	ErrCardTypeNameTaken CardTypeServiceError = "bu isimde bir kart türü zaten mevcut"
)

// ICardTypeService kart türü işlemleri için arayüz.
// Transport katmanı yalnızca bu sözleşmeye bağımlıdır.
type ICardTypeService interface {
	GetAllCardTypes(ctx context.Context) (*schemas.CardTypeListResponse, error)
	GetCardTypeByID(ctx context.Context, id uint) (*schemas.CardTypeDetailResponse, error)
	CreateCardType(ctx context.Context, input schemas.CardTypeCreateInput) (*schemas.CardTypeResponse, error)
}

// CardTypeService ICardTypeService arayüzünü uygular.
type CardTypeService struct {
	repo     repositories.ICardTypeRepository
	cardRepo repositories.ICardRepository // tür detayındaki kart listesi için
}

// NewCardTypeService yeni bir CardTypeService örneği oluşturur.
// Bağımlılıklar constructor injection ile verilir; global bağlantı erişimi yoktur.
func NewCardTypeService(db *gorm.DB) ICardTypeService {
	return &CardTypeService{
		repo:     repositories.NewCardTypeRepository(db),
		cardRepo: repositories.NewCardRepository(db),
	}
}

// GetAllCardTypes tüm kart türlerini liste zarfı içinde döndürür.
func (s *CardTypeService) GetAllCardTypes(ctx context.Context) (*schemas.CardTypeListResponse, error) {
	cardTypes, err := s.repo.GetAllCardTypes(ctx)
	if err != nil {
		return nil, err
	}
	return schemas.NewCardTypeListResponse(cardTypes), nil
}

// GetCardTypeByID kart türünü kartlarıyla birlikte döndürür. Kartlar modele
// gömülü bir koleksiyondan değil, kart repository'sinin yönlü sorgusundan gelir.
func (s *CardTypeService) GetCardTypeByID(ctx context.Context, id uint) (*schemas.CardTypeDetailResponse, error) {
	cardType, err := s.repo.GetCardTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardTypeNotFound
		}
		return nil, err
	}

	cards, err := s.cardRepo.FindCardsByCardTypeID(ctx, cardType.ID)
	if err != nil {
		return nil, err
	}
	return schemas.NewCardTypeDetailResponse(cardType, cards), nil
}

// CreateCardType girdiyi doğrular, kaydeder ve projeksiyonunu döndürür.
// Doğrulama hataları validation.Errors olarak olduğu gibi yukarı taşınır.
func (s *CardTypeService) CreateCardType(ctx context.Context, input schemas.CardTypeCreateInput) (*schemas.CardTypeResponse, error) {
	if err := validation.Validate(input); err != nil {
		return nil, err
	}

	cardType := input.ToModel()
	if err := s.repo.CreateCardType(ctx, &cardType); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCardTypeNameTaken
		}
		configslog.Log.Error("CreateCardType: Repo error", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Kart türü başarıyla oluşturuldu: %s (ID %d)", cardType.Name, cardType.ID)
	resp := schemas.NewCardTypeResponse(&cardType)
	return &resp, nil
}

var _ ICardTypeService = (*CardTypeService)(nil)
