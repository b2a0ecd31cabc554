package logging

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs method and path for every request before routing,
// matched routes and unmatched ones alike, tagged with a request id.
func RequestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			log.WithFields(logrus.Fields{
				"requestID": uuid.Must(uuid.NewV4()).String(),
				"method":    req.Method,
				"path":      req.URL.Path,
			}).Infof("%v %v", req.Method, req.URL.Path)

			next.ServeHTTP(w, req)
		})
	}
}
