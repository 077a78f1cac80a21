package nodetool

import (
	log "github.com/sirupsen/logrus"
)

// UTCFormatter formats log entries with their time in UTC
type UTCFormatter struct {
	log.Formatter
}

// Format implements logrus.Formatter
func (u UTCFormatter) Format(e *log.Entry) ([]byte, error) {
	e.Time = e.Time.UTC()
	return u.Formatter.Format(e)
}
