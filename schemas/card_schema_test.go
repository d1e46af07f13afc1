package schemas

import (
	"encoding/json"
	"strings"
	"testing"

	"kartoyunu.app/models"
)

func intPtr(v int) *int { return &v }

func TestCardCreateInput_ToModel_AppliesDefaults(t *testing.T) {
	in := CardCreateInput{Name: "Alev İblisi", Description: "Ateş yaratığı", CardTypeID: 1}
	card := in.ToModel()

	if card.ManaPrice != DefaultManaPrice {
		t.Fatalf("expected default mana price %d, got %d", DefaultManaPrice, card.ManaPrice)
	}
	if card.HP != DefaultHP {
		t.Fatalf("expected default hp %d, got %d", DefaultHP, card.HP)
	}
	if card.Attack != DefaultAttack {
		t.Fatalf("expected default attack %d, got %d", DefaultAttack, card.Attack)
	}
	if card.CardTypeID != 1 {
		t.Fatalf("expected card type id to carry over, got %d", card.CardTypeID)
	}
}

func TestCardCreateInput_ToModel_ExplicitZeroIsKept(t *testing.T) {
	in := CardCreateInput{
		Name:        "Alev İblisi",
		Description: "Ateş yaratığı",
		ManaPrice:   intPtr(0),
		HP:          intPtr(0),
		Attack:      intPtr(0),
		CardTypeID:  1,
	}
	card := in.ToModel()

	if card.ManaPrice != 0 || card.HP != 0 || card.Attack != 0 {
		t.Fatalf("expected explicit zeros to survive, got mana=%d hp=%d attack=%d",
			card.ManaPrice, card.HP, card.Attack)
	}
}

func TestCardCreateInput_ToModel_ExplicitValues(t *testing.T) {
	in := CardCreateInput{
		Name:        "Buz Golemi",
		Description: "Dayanıklı yaratık",
		ManaPrice:   intPtr(6),
		HP:          intPtr(90),
		Attack:      intPtr(35),
		CardTypeID:  2,
	}
	card := in.ToModel()

	if card.ManaPrice != 6 || card.HP != 90 || card.Attack != 35 {
		t.Fatalf("expected explicit values, got mana=%d hp=%d attack=%d",
			card.ManaPrice, card.HP, card.Attack)
	}
}

func TestNewCardResponse_NestedType(t *testing.T) {
	card := models.Card{
		Name:        "Alev İblisi",
		Description: "Ateş yaratığı",
		ManaPrice:   2,
		HP:          30,
		Attack:      40,
		CardTypeID:  7,
		CardType:    models.CardType{Name: "Elemental", Description: "Doğa güçleri"},
	}
	card.ID = 3
	card.CardType.ID = 7

	resp := NewCardResponse(&card)
	if resp.ID != 3 || resp.CardTypeID != 7 {
		t.Fatalf("unexpected ids: id=%d card_type_id=%d", resp.ID, resp.CardTypeID)
	}
	if resp.CardType.ID != 7 || resp.CardType.Name != "Elemental" {
		t.Fatalf("expected nested card type projection, got %+v", resp.CardType)
	}
}

func TestNewCardListResponse_EmptyMarshalsAsArray(t *testing.T) {
	resp := NewCardListResponse(nil)
	if resp.Total != 0 {
		t.Fatalf("expected total 0, got %d", resp.Total)
	}
	if resp.Cards == nil {
		t.Fatalf("expected non-nil empty card slice")
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(body), `"cards":[]`) {
		t.Fatalf("expected empty list to serialize as [], got %s", body)
	}
}

func TestNewCardListResponse_TotalMatchesItems(t *testing.T) {
	cards := []models.Card{
		{Name: "Alev İblisi", CardType: models.CardType{Name: "Elemental"}},
		{Name: "Buz Golemi", CardType: models.CardType{Name: "Elemental"}},
	}
	resp := NewCardListResponse(cards)
	if resp.Total != 2 || len(resp.Cards) != 2 {
		t.Fatalf("expected total to equal item count, got total=%d len=%d", resp.Total, len(resp.Cards))
	}
}

func TestNewCardTypeListResponse_TotalMatchesItems(t *testing.T) {
	types := []models.CardType{{Name: "Elemental"}, {Name: "Savaşçılar"}, {Name: "Ölümsüz Ordu"}}
	resp := NewCardTypeListResponse(types)
	if resp.Total != 3 || len(resp.CardTypes) != 3 {
		t.Fatalf("expected total to equal item count, got total=%d len=%d", resp.Total, len(resp.CardTypes))
	}
}

func TestNewCardTypeDetailResponse_ComposesCards(t *testing.T) {
	ct := models.CardType{Name: "Elemental", Description: "Doğa güçleri"}
	ct.ID = 1
	cards := []models.Card{
		{Name: "Alev İblisi", CardTypeID: 1, CardType: ct},
	}

	detail := NewCardTypeDetailResponse(&ct, cards)
	if detail.Name != "Elemental" {
		t.Fatalf("expected embedded type fields, got %q", detail.Name)
	}
	if len(detail.Cards) != 1 || detail.Cards[0].Name != "Alev İblisi" {
		t.Fatalf("expected composed card list, got %+v", detail.Cards)
	}

	// Kartsız tür boş (null olmayan) listeyle döner
	empty := NewCardTypeDetailResponse(&ct, nil)
	if empty.Cards == nil || len(empty.Cards) != 0 {
		t.Fatalf("expected empty non-nil cards slice, got %#v", empty.Cards)
	}
}
