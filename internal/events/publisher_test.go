package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestNotificationEvent_ToJSON(t *testing.T) {
	e := NotificationEvent{
		NotificationID: 42,
		UserID:         "u-1",
		Message:        "You've reached your saving goal: Bike!",
		UniqueKey:      "savings-7-100",
		CreatedAt:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	data, err := e.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["unique_key"] != "savings-7-100" || got["user_id"] != "u-1" {
		t.Errorf("payload = %s", data)
	}
	if got["notification_id"].(float64) != 42 {
		t.Errorf("notification_id = %v", got["notification_id"])
	}
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	if err := p.Publish(context.Background(), NotificationEvent{}); err != nil {
		t.Errorf("Publish() error = %v", err)
	}
}
