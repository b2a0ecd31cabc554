package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// HandlerFunc is a request handler that reports failures instead of
// writing error responses itself.
type HandlerFunc func(http.ResponseWriter, *http.Request, *LogData) error

// ErrorWriter translates a handler error into a response. All handler
// failures funnel through the one writer the caller supplies.
type ErrorWriter func(http.ResponseWriter, *http.Request, error)

// Wrapper adapts a HandlerFunc to net/http. Each request gets a fresh
// LogData; a completion entry is logged on success and errors go to the
// error writer, which owns both the response and the error log.
func Wrapper(loggingName string, log *logrus.Logger, writeError ErrorWriter, handler HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req, logData)
		endTimer()

		if err != nil {
			writeError(w, req, err)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}
