package model

import (
	"time"

	"github.com/amirhossein-jamali/transfer-processor/internal/domain/entity"
)

// Account represents the accounts table
type Account struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Balance   int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the account model
func (Account) TableName() string {
	return "accounts"
}

// ToEntity converts the database model to a domain entity
func (a *Account) ToEntity() *entity.Account {
	return entity.RestoreAccount(a.ID, a.Balance, a.CreatedAt, a.UpdatedAt)
}

// FromEntity converts a domain entity to the database model
func FromEntity(account *entity.Account) *Account {
	return &Account{
		ID:        account.ID,
		Balance:   account.Balance(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
