package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// ReminderFrequency is how often a payment reminder repeats.
type ReminderFrequency string

const (
	FrequencyDaily   ReminderFrequency = "DAILY"
	FrequencyWeekly  ReminderFrequency = "WEEKLY"
	FrequencyMonthly ReminderFrequency = "MONTHLY"
	FrequencyYearly  ReminderFrequency = "YEARLY"
)

// User represents a registered user.
type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Username         string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Gender           string     `json:"gender"`
	BirthDate        *time.Time `json:"birth_date,omitempty"`
	ProfileCompleted bool       `gorm:"default:false" json:"profile_completed"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Account is a money container ("Banco", "Efectivo", ...) owned by one user.
// Deleting an account deletes all of its transactions.
type Account struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string        `gorm:"not null" json:"name"`
	Type         string        `gorm:"not null" json:"type"`
	Transactions []Transaction `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Transaction is a single income or expense movement on an account.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Category    string          `gorm:"not null" json:"category"`
	Notes       string          `json:"notes"`
	IsRecurring bool            `gorm:"default:false" json:"is_recurring"`
	// ClientID is the id assigned by an offline client, used by the sync
	// endpoint to deduplicate replayed mutations. Empty for rows created
	// directly through the API.
	ClientID  string    `gorm:"index" json:"client_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Budget is a per-category spending limit.
type Budget struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Category    string          `gorm:"not null" json:"category"`
	LimitAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"limit_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Goal is a savings target. Once completed it stays completed and keeps its
// original completion timestamp.
type Goal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Description   string          `json:"description"`
	IsCompleted   bool            `gorm:"default:false" json:"is_completed"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Reminder is a scheduled payment reminder.
type Reminder struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string            `gorm:"not null" json:"title"`
	Amount    *decimal.Decimal  `gorm:"type:numeric(14,2)" json:"amount,omitempty"`
	DueDate   time.Time         `gorm:"not null;index" json:"due_date"`
	Frequency ReminderFrequency `gorm:"not null" json:"frequency"`
	Category  string            `json:"category"`
	Notes     string            `json:"notes"`
	IsActive  bool              `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
