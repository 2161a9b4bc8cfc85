package models

import (
	"gorm.io/gorm"
)

// AlertSeverity grades an operational alert.
type AlertSeverity string

// Alert severities.
const (
	AlertInfo     AlertSeverity = "info"
	AlertWarning  AlertSeverity = "warning"
	AlertCritical AlertSeverity = "critical"
)

// Alert is an operational notice surfaced on the admin panel.
type Alert struct {
	gorm.Model
	Severity     AlertSeverity `json:"severity" gorm:"index"`
	Message      string        `json:"message" gorm:"not null"`
	Source       string        `json:"source"`
	Acknowledged bool          `json:"acknowledged" gorm:"default:false;index"`
}
