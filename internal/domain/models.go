package domain

import "time"

type User struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Phone        string     `db:"phone"`
	IsAdmin      bool       `db:"is_admin"`
	OTP          string     `db:"otp"`
	OTPExpiresAt *time.Time `db:"otp_expires_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type Campaign struct {
	ID              string    `db:"id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	Goal            float64   `db:"goal"`
	Collected       float64   `db:"collected"`
	Currency        string    `db:"currency"`
	Deadline        time.Time `db:"deadline"`
	Urgency         string    `db:"urgency"`
	BeneficiaryInfo string    `db:"beneficiary_info"`
	WalletOptions   []string  `db:"wallet_options"`
	PhoneNumber     string    `db:"phone_number"`
	Status          string    `db:"status"`
	CreatedBy       string    `db:"created_by"`
	CreatedByEmail  string    `db:"created_by_email"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type Donation struct {
	ID            string    `db:"id"`
	CampaignID    string    `db:"campaign_id"`
	Amount        float64   `db:"amount"`
	Currency      string    `db:"currency"`
	TransactionID string    `db:"transaction_id"`
	Method        string    `db:"method"`
	CardLast4     string    `db:"card_last4"`
	DonorName     string    `db:"donor_name"`
	DonorEmail    string    `db:"donor_email"`
	Date          time.Time `db:"date"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// DonationReceipt is what a donor gets back after a successful donation.
type DonationReceipt struct {
	Donation *Donation
	Campaign *Campaign
	Progress string
}

type CampaignDonations struct {
	Campaign  *Campaign
	Donations []Donation
}

// MaxMoney is the largest goal, amount or collected total the NUMERIC(14,2)
// columns can hold.
const MaxMoney = 999999999999.99

const (
	CurrencyPKR = "PKR"
	CurrencyUSD = "USD"
)

const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

const (
	// StatusPending campaign waits for an admin decision;
	StatusPending = "pending"
	// StatusApproved campaign is visible to donors;
	StatusApproved = "approved"
	// StatusRejected campaign was declined by an admin.
	StatusRejected = "rejected"
)

func IsSupportedCurrency(c string) bool {
	return c == CurrencyPKR || c == CurrencyUSD
}

func IsSupportedUrgency(u string) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

func IsSupportedStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
