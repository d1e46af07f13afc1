package models

// CardType oyun kartlarının ait olduğu türdür (örn. Elemental).
// Bir türün kartlarına erişim CardRepository.FindCardsByCardTypeID ile yapılır;
// modelde geriye dönük bir Cards koleksiyonu tutulmaz (stale nesne ve N+1
// sorgu riskine karşı ilişki tek yönlüdür).
type CardType struct {
	BaseModel
	Name        string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string  `gorm:"type:varchar(500);not null"`
	ImageURL    *string `gorm:"type:varchar(500)"`
}
