package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a wallet ledger entry.
type TransactionType string

const (
	TransactionRecharge      TransactionType = "recharge"
	TransactionUnlockContact TransactionType = "unlock_contact"
	TransactionRefund        TransactionType = "refund"
)

// WalletTransaction is an append-only ledger entry. Amount is signed:
// positive for credits, negative for debits. Rows are never updated or
// deleted; the ledger is the audit source of truth for a user's balance.
type WalletTransaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;index;not null" json:"userId"`
	Amount      int             `gorm:"not null" json:"amount"`
	Type        TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
