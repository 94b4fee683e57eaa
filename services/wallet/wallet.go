package wallet

import (
	"errors"
	"fmt"

	technicianRepo "labourmandi/database/repository/technician"
	userRepo "labourmandi/database/repository/user"
	walletRepo "labourmandi/database/repository/wallet"
	"labourmandi/models"

	"github.com/google/uuid"
)

var (
	// ErrInvalidAmount signals a non-positive recharge amount.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance signals an unlock the caller cannot afford.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrContactNotFound signals an unlock against an unknown technician.
	ErrContactNotFound = errors.New("contact not found")
)

// UnlockResult is the outcome of an unlock-contact call. AlreadyUnlocked
// means the caller had paid before and no charge was made. NewBalance is
// always serialized; zero is a legitimate balance after a charge.
type UnlockResult struct {
	Success         bool   `json:"success"`
	AlreadyUnlocked bool   `json:"alreadyUnlocked,omitempty"`
	NewBalance      int    `json:"newBalance"`
	WhatsappNumber  string `json:"whatsappNumber"`
}

// WalletService covers the two wallet mutations and the read side.
type WalletService interface {
	Recharge(userID uuid.UUID, amount int) (int, error)
	UnlockContact(userID, contactID uuid.UUID) (*UnlockResult, error)
	Balance(userID uuid.UUID) (int, error)
	Transactions(userID uuid.UUID) ([]models.WalletTransaction, error)
}

// DefaultWalletService is the production implementation.
type DefaultWalletService struct {
	Wallet      walletRepo.WalletRepository
	Users       userRepo.UserRepository
	Technicians technicianRepo.TechnicianRepository
	// UnlockCost is the flat fee, in rupees, for revealing a contact number.
	UnlockCost int
}

// Recharge credits the wallet and returns the new balance. The ledger append
// and the cached balance update commit together.
func (s *DefaultWalletService) Recharge(userID uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	desc := fmt.Sprintf("Wallet recharge of ₹%d", amount)
	return s.Wallet.Credit(userID, amount, models.TransactionRecharge, desc)
}

// UnlockContact reveals a technician's WhatsApp number for a flat fee.
// Re-unlocking a contact the caller already paid for is free and idempotent.
func (s *DefaultWalletService) UnlockContact(userID, contactID uuid.UUID) (*UnlockResult, error) {
	profile, err := s.Technicians.GetProfileByUserID(contactID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrContactNotFound
	}

	if profile.HasUnlocked(userID) {
		balance, err := s.Balance(userID)
		if err != nil {
			return nil, err
		}
		return &UnlockResult{Success: true, AlreadyUnlocked: true, NewBalance: balance, WhatsappNumber: profile.WhatsappNumber}, nil
	}

	newBalance, err := s.Wallet.Debit(userID, s.UnlockCost, models.TransactionUnlockContact, "Unlocked contact for technician")
	if err != nil {
		if errors.Is(err, walletRepo.ErrInsufficientBalance) {
			return nil, ErrInsufficientBalance
		}
		return nil, err
	}

	if err := s.Technicians.AppendUnlockedBy(contactID, userID); err != nil {
		return nil, err
	}
	return &UnlockResult{Success: true, NewBalance: newBalance, WhatsappNumber: profile.WhatsappNumber}, nil
}

func (s *DefaultWalletService) Balance(userID uuid.UUID) (int, error) {
	usr, err := s.Users.GetByID(userID)
	if err != nil {
		return 0, err
	}
	if usr == nil {
		return 0, fmt.Errorf("user %s not found", userID)
	}
	return usr.WalletBalance, nil
}

func (s *DefaultWalletService) Transactions(userID uuid.UUID) ([]models.WalletTransaction, error) {
	return s.Wallet.ListByUser(userID)
}
