package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OtpVerification holds a pending one-time code for a phone number. The
// code itself is never stored, only its bcrypt hash; the row is deleted on
// successful verification and swept by cron once expired.
type OtpVerification struct {
	gorm.Model
	Phone     string    `json:"phone" gorm:"index;not null"`
	OtpHash   string    `json:"-" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}

// IsExpired reports whether the code is past its validity window.
func (v *OtpVerification) IsExpired(now time.Time) bool {
	return !v.ExpiresAt.After(now)
}

// Matches checks a submitted code against the stored hash.
func (v *OtpVerification) Matches(otp string) bool {
	return bcrypt.CompareHashAndPassword([]byte(v.OtpHash), []byte(otp)) == nil
}

// HashOTP hashes a code for storage.
func HashOTP(otp string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
