package otp

// OtpRepository stores one-time codes for phone sign-in. Codes are single
// use: Verify deletes the record on success. Unverified codes simply expire
// and are never garbage-collected.
type OtpRepository interface {
	// Create persists a code for the phone number with a ten minute expiry.
	Create(phone, code string) error
	// Verify reports whether the (phone, code) pair matches an unexpired
	// record, deleting it when it does.
	Verify(phone, code string) (bool, error)
}
