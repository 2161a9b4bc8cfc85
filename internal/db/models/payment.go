package models

import (
	"gorm.io/gorm"
)

// PaymentStatus mirrors the gateway's lifecycle, in the product's language.
type PaymentStatus string

// Payment statuses.
const (
	PaymentStatusPendente  PaymentStatus = "pendente"
	PaymentStatusAprovado  PaymentStatus = "aprovado"
	PaymentStatusRejeitado PaymentStatus = "rejeitado"
	PaymentStatusCancelado PaymentStatus = "cancelado"
)

// Payment is a charge attempt against a user, recorded before and updated
// after the gateway call.
type Payment struct {
	gorm.Model
	UserID            uint          `json:"-" gorm:"not null;index"`
	Amount            float64       `json:"amount"`
	Currency          string        `json:"currency" gorm:"default:BRL"`
	Description       string        `json:"description"`
	Status            PaymentStatus `json:"status" gorm:"default:pendente;index"`
	Provider          string        `json:"provider"`
	ProviderPaymentID string        `json:"provider_payment_id" gorm:"index"`
}
