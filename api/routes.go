package api

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/handlers/expense"
	"github.com/carson-networks/expense-server/internal/handlers/status"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// Rest serves the HTTP API.
type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service

	// DevMode exposes stack traces in error bodies. Never set in production.
	DevMode bool
}

// Routes builds the full handler chain: CORS and the catch-all request
// logger wrap the mux, handler errors funnel through WriteError, and
// unmatched paths fall through to the structured 404.
func (r *Rest) Routes() http.Handler {
	createHandler := expense.NewCreateExpenseHandler(r.Service.Expense)
	listHandler := expense.NewListExpensesHandler(r.Service.Expense)
	statusHandler := status.NewHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /expenses", logging.Wrapper("CreateExpense", r.Logger, r.WriteError, createHandler.Handle))
	mux.HandleFunc("GET /expenses", logging.Wrapper("ListExpenses", r.Logger, r.WriteError, listHandler.Handle))
	mux.HandleFunc("GET /health", logging.Wrapper("Status", r.Logger, r.WriteError, statusHandler.Handle))
	mux.HandleFunc("/", r.notFound)

	return CORS(logging.RequestLogger(r.Logger)(mux))
}

func (r *Rest) notFound(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusNotFound, notFoundBody{
		Error: "Not found",
		Path:  req.URL.Path,
	})
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
