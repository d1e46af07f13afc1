package models

import "time"

// BaseModel tüm entity'lerin ortak alanlarını taşır. Kimlik (ID) veritabanı
// tarafından üretilir ve oluşturulduktan sonra değişmez.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
