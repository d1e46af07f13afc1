// models/card.go
package models

// Card tek bir oyun kartının kaydıdır. Her kart zorunlu olarak bir CardType'a
// bağlıdır (cards.card_type_id -> card_types.id). Servis katmanından okunan
// her kartta CardType ilişkisi eager yüklenmiş olmalıdır.
type Card struct {
	BaseModel
	Name        string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string  `gorm:"type:varchar(500);not null"`
	ImageURL    *string `gorm:"type:varchar(500)"`
	ManaPrice   int     `gorm:"not null;default:1;index"`
	HP          int     `gorm:"not null;default:100"`
	Attack      int     `gorm:"not null;default:50"`
	CardTypeID  uint    `gorm:"not null;index"`

	// GORM İlişkisi
	CardType CardType `gorm:"foreignKey:CardTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
