package wallet

import (
	"fmt"

	"labourmandi/database"
	"labourmandi/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWalletRepo implements WalletRepository on the shared Postgres handle.
type GormWalletRepo struct {
	DB *gorm.DB
}

func NewGormWalletRepo() *GormWalletRepo {
	return &GormWalletRepo{DB: database.DB}
}

func (r *GormWalletRepo) Credit(userID uuid.UUID, amount int, txType models.TransactionType, description string) (int, error) {
	return r.apply(userID, amount, txType, description)
}

func (r *GormWalletRepo) Debit(userID uuid.UUID, amount int, txType models.TransactionType, description string) (int, error) {
	return r.apply(userID, -amount, txType, description)
}

// apply appends the ledger entry and adjusts the cached balance atomically.
// For debits the balance update is guarded in the WHERE clause; zero rows
// affected means the funds were not there and the whole transaction rolls
// back, ledger entry included.
func (r *GormWalletRepo) apply(userID uuid.UUID, amount int, txType models.TransactionType, description string) (int, error) {
	var newBalance int
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		entry := models.WalletTransaction{
			UserID:      userID,
			Amount:      amount,
			Type:        txType,
			Description: description,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		update := tx.Model(&models.User{}).Where("id = ?", userID)
		if amount < 0 {
			update = update.Where("wallet_balance >= ?", -amount)
		}
		res := update.Update("wallet_balance", gorm.Expr("wallet_balance + ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientBalance
		}

		var usr models.User
		if err := tx.Select("wallet_balance").First(&usr, "id = ?", userID).Error; err != nil {
			return err
		}
		newBalance = usr.WalletBalance
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("wallet update for user %s failed: %w", userID, err)
	}
	return newBalance, nil
}

func (r *GormWalletRepo) ListByUser(userID uuid.UUID) ([]models.WalletTransaction, error) {
	var entries []models.WalletTransaction
	if err := r.DB.Order("created_at DESC").Find(&entries, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
	}
	return entries, nil
}
