package services

import (
	"fmt"
	"time"

	"nutritrack/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists an alert and fans it out over websocket + push.
// Safe to call anywhere, including before InitAlertDeps (no-op then),
// which keeps the workflows testable without wiring AWS.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Nutritrack", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// BroadcastDailyTotal streams a freshly reconciled total to the user's
// open websocket sessions. No push, no persistence — it's a live-UI hint.
func BroadcastDailyTotal(userID uint, dayKey string, total float64) {
	if _alert.rt == nil {
		return
	}
	_alert.rt.Broadcast(userID, map[string]any{
		"kind":          "daily_total.updated",
		"date":          dayKey,
		"totalCalories": total,
	})
}
