// schemas/card_type_schema.go
package schemas

import "kartoyunu.app/models"

// CardTypeCreateInput yeni kart türü oluşturma isteğinin gövdesidir.
// Sınırlar kayıt veritabanına inmeden pkg/validation ile denetlenir.
type CardTypeCreateInput struct {
	Name        string  `json:"name" validate:"required,min=5,max=100"`
	Description string  `json:"description" validate:"required,min=5,max=500"`
	ImageURL    *string `json:"image_url" validate:"omitempty,max=500"`
}

// ToModel doğrulanmış girdiden persist edilecek modeli üretir.
func (in CardTypeCreateInput) ToModel() models.CardType {
	return models.CardType{
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
}

// CardTypeResponse kart türünün transport projeksiyonudur.
type CardTypeResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// CardTypeDetailResponse tekil okumalarda türle birlikte kartlarını da taşır.
// Kart listesi modele gömülü bir koleksiyondan değil, kart repository'sinin
// yönlü sorgusundan beslenir.
type CardTypeDetailResponse struct {
	CardTypeResponse
	Cards []CardResponse `json:"cards"`
}

// CardTypeListResponse liste zarfıdır; Total her zaman len(CardTypes)'a eşittir.
type CardTypeListResponse struct {
	CardTypes []CardTypeResponse `json:"card_types"`
	Total     int                `json:"total"`
}

// NewCardTypeResponse modelden projeksiyon üretir.
func NewCardTypeResponse(m *models.CardType) CardTypeResponse {
	return CardTypeResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
	}
}

// NewCardTypeDetailResponse türü ve ona ait kartları tek yanıtta birleştirir.
func NewCardTypeDetailResponse(m *models.CardType, cards []models.Card) *CardTypeDetailResponse {
	return &CardTypeDetailResponse{
		CardTypeResponse: NewCardTypeResponse(m),
		Cards:            newCardResponses(cards),
	}
}

// NewCardTypeListResponse listeyi zarfa sarar; boş liste null değil [] üretir.
func NewCardTypeListResponse(items []models.CardType) *CardTypeListResponse {
	out := make([]CardTypeResponse, 0, len(items))
	for i := range items {
		out = append(out, NewCardTypeResponse(&items[i]))
	}
	return &CardTypeListResponse{CardTypes: out, Total: len(out)}
}
