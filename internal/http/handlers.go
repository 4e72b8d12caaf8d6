package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"tracker/internal/core"
	"tracker/internal/insights"
	"tracker/internal/stats"
)

type createTransactionRequest struct {
	Amount      core.Money           `json:"amount"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Type        core.TransactionType `json:"type"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encoding failed", "error", err)
	}
}

// isValidationError reports whether err is one of the rejection reasons of
// Store.Add, recoverable at this boundary.
func isValidationError(err error) bool {
	return errors.Is(err, core.ErrInvalidAmount) ||
		errors.Is(err, core.ErrEmptyDescription) ||
		errors.Is(err, core.ErrUnknownCategory) ||
		errors.Is(err, core.ErrInvalidType) ||
		errors.Is(err, core.ErrAmountSign)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	tx, err := s.tracker.AddTransaction(r.Context(), req.Amount, req.Description, req.Category, req.Type)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}
		slog.ErrorContext(r.Context(), "Transaction create failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid transaction id"})
		return
	}
	// Deleting an absent id is a no-op, reported but never an error.
	deleted := s.tracker.DeleteTransaction(r.Context(), id)
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = "all"
	}
	txs := s.tracker.FilteredTransactions(filter)
	if txs == nil {
		txs = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Summary())
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.WeeklyTrend())
}

func (s *Server) handleCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	breakdown := s.tracker.CategoryBreakdown()
	if breakdown == nil {
		breakdown = []stats.CategoryTotal{}
	}
	writeJSON(w, http.StatusOK, breakdown)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	ins := s.tracker.Insights()
	if ins == nil {
		ins = []insights.Insight{}
	}
	writeJSON(w, http.StatusOK, ins)
}
