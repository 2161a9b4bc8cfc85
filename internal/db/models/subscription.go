package models

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionPlan is the commercial plan of an account.
type SubscriptionPlan string

// Subscription plans.
const (
	PlanFree       SubscriptionPlan = "free"
	PlanPro        SubscriptionPlan = "pro"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

// SubscriptionStatus is the billing state of a subscription.
type SubscriptionStatus string

// Subscription statuses.
const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription is a user's commercial plan. One row per user.
type Subscription struct {
	gorm.Model
	UserID   uint               `json:"-" gorm:"not null;uniqueIndex"`
	Plan     SubscriptionPlan   `json:"plan" gorm:"default:free"`
	Status   SubscriptionStatus `json:"status" gorm:"default:active"`
	RenewsAt *time.Time         `json:"renews_at"`
	// AIQuota is the number of assistant calls included per renewal period.
	AIQuota int `json:"ai_quota"`
}

// TableName overrides the default table name
func (Subscription) TableName() string {
	return "user_subscriptions"
}
