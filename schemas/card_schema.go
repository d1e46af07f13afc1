// schemas/card_schema.go
package schemas

import "kartoyunu.app/models"

// Sayısal kart alanlarının varsayılanları. Alan istekte hiç yoksa uygulanır.
const (
	DefaultManaPrice = 1
	DefaultHP        = 100
	DefaultAttack    = 50
)

// CardCreateInput yeni kart oluşturma isteğinin gövdesidir. Sayısal alanlar
// pointer'dır: nil "gönderilmedi" demektir ve varsayılan uygulanır; açık 0
// ise sınır içi geçerli bir değerdir.
type CardCreateInput struct {
	Name        string  `json:"name" validate:"required,min=5,max=100"`
	Description string  `json:"description" validate:"required,min=2,max=500"`
	ImageURL    *string `json:"image_url" validate:"omitempty,max=500"`
	ManaPrice   *int    `json:"mana_price" validate:"omitempty,gte=0,lte=10"`
	HP          *int    `json:"hp" validate:"omitempty,gte=0,lte=100"`
	Attack      *int    `json:"attack" validate:"omitempty,gte=0,lte=100"`
	CardTypeID  uint    `json:"card_type_id" validate:"required"`
}

// ToModel doğrulanmış girdiden modeli üretir, eksik sayısalları varsayılana bağlar.
func (in CardCreateInput) ToModel() models.Card {
	card := models.Card{
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		ManaPrice:   DefaultManaPrice,
		HP:          DefaultHP,
		Attack:      DefaultAttack,
		CardTypeID:  in.CardTypeID,
	}
	if in.ManaPrice != nil {
		card.ManaPrice = *in.ManaPrice
	}
	if in.HP != nil {
		card.HP = *in.HP
	}
	if in.Attack != nil {
		card.Attack = *in.Attack
	}
	return card
}

// CardResponse kartın transport projeksiyonudur. CardType her zaman doludur;
// kart okumaları türünü eager yükler.
type CardResponse struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ImageURL    *string          `json:"image_url"`
	ManaPrice   int              `json:"mana_price"`
	HP          int              `json:"hp"`
	Attack      int              `json:"attack"`
	CardTypeID  uint             `json:"card_type_id"`
	CardType    CardTypeResponse `json:"card_type"`
}

// CardListResponse liste zarfıdır; Total her zaman len(Cards)'a eşittir.
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
	Total int            `json:"total"`
}

// NewCardResponse CardType ilişkisi yüklenmiş modelden projeksiyon üretir.
func NewCardResponse(m *models.Card) CardResponse {
	return CardResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		ManaPrice:   m.ManaPrice,
		HP:          m.HP,
		Attack:      m.Attack,
		CardTypeID:  m.CardTypeID,
		CardType:    NewCardTypeResponse(&m.CardType),
	}
}

func newCardResponses(items []models.Card) []CardResponse {
	out := make([]CardResponse, 0, len(items))
	for i := range items {
		out = append(out, NewCardResponse(&items[i]))
	}
	return out
}

// NewCardListResponse listeyi zarfa sarar; boş liste null değil [] üretir.
func NewCardListResponse(items []models.Card) *CardListResponse {
	return &CardListResponse{Cards: newCardResponses(items), Total: len(items)}
}
