// FILE: internal/entity/catalog_entity.go
// Library catalog records
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Author struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName    string    `gorm:"type:varchar(255);not null"`
	Biography   string    `gorm:"type:text"`
	Nationality string    `gorm:"type:varchar(100)"`
	Dob         *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	Books       []Book    `gorm:"foreignKey:AuthorId"`
}

func (Author) TableName() string {
	return "authors"
}

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	if a.Id == uuid.Nil {
		a.Id = uuid.New()
	}
	return nil
}

// Category is keyed by its short code ("FIC", "SCI").
type Category struct {
	Code           string    `gorm:"type:varchar(20);primaryKey"`
	EnglishName    string    `gorm:"type:varchar(155);not null"`
	VietnameseName string    `gorm:"type:varchar(155)"`
	Description    string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}

type Book struct {
	Id              int     `gorm:"primaryKey;autoIncrement"`
	Title           string  `gorm:"type:varchar(255);not null;index"`
	SubTitle        *string `gorm:"type:varchar(255)"`
	Isbn            string  `gorm:"type:varchar(20);index"`
	Summary         string  `gorm:"type:text"`
	PublicationYear int
	PageCount       int
	CanBorrow       bool      `gorm:"not null"`
	AuthorId        uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryCode    string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
	Author          *Author   `gorm:"foreignKey:AuthorId"`
	Category        *Category `gorm:"foreignKey:CategoryCode;references:Code"`
}

func (Book) TableName() string {
	return "books"
}
