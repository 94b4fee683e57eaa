package repository

import (
	bidRepo "labourmandi/database/repository/bid"
	jobRepo "labourmandi/database/repository/job"
	otpRepo "labourmandi/database/repository/otp"
	technicianRepo "labourmandi/database/repository/technician"
	userRepo "labourmandi/database/repository/user"
	walletRepo "labourmandi/database/repository/wallet"
)

// Re-export the repository interfaces and constructors.

type UserRepository = userRepo.UserRepository

var NewGormUserRepo = userRepo.NewGormUserRepo

type TechnicianRepository = technicianRepo.TechnicianRepository

var NewGormTechnicianRepo = technicianRepo.NewGormTechnicianRepo

type JobRepository = jobRepo.JobRepository

var NewGormJobRepo = jobRepo.NewGormJobRepo

type BidRepository = bidRepo.BidRepository

var NewGormBidRepo = bidRepo.NewGormBidRepo

type WalletRepository = walletRepo.WalletRepository

var NewGormWalletRepo = walletRepo.NewGormWalletRepo

type OtpRepository = otpRepo.OtpRepository

var NewGormOtpRepo = otpRepo.NewGormOtpRepo
