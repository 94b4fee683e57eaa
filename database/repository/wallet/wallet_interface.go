package wallet

import (
	"errors"

	"labourmandi/models"

	"github.com/google/uuid"
)

// ErrInsufficientBalance is returned by Debit when the guarded balance check
// fails inside the transaction.
var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// WalletRepository owns the append-only ledger and the cached balance on the
// user record. Credit and Debit append the ledger entry and adjust the cached
// balance in one database transaction, so the two can never desynchronize.
type WalletRepository interface {
	// Credit appends a positive ledger entry and returns the new balance.
	Credit(userID uuid.UUID, amount int, txType models.TransactionType, description string) (int, error)
	// Debit appends a negative ledger entry of the given (positive) amount.
	// It fails with ErrInsufficientBalance when the balance would go below
	// zero, and returns the new balance otherwise.
	Debit(userID uuid.UUID, amount int, txType models.TransactionType, description string) (int, error)
	ListByUser(userID uuid.UUID) ([]models.WalletTransaction, error)
}
