// Package audit writes a log line for every record mutation published on
// the event bus.
package audit

import (
	"github.com/asaskevich/EventBus"
	"github.com/sirupsen/logrus"
	"github.com/swipehired/jobtrack/internal/events"
)

func Attach(bus EventBus.Bus) error {
	return bus.Subscribe(events.RecordChangedTopic, onRecordChanged)
}

func onRecordChanged(event events.RecordChanged) {
	logrus.WithFields(logrus.Fields{
		"entity": event.Entity,
		"action": string(event.Action),
		"id":     event.ID,
	}).Infof("%s %d (%s) %s", event.Entity, event.ID, event.Label, event.Action)
}
