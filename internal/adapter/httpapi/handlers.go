package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dferrao/lendtrack-backend/internal/domain"
	"github.com/dferrao/lendtrack-backend/internal/usecase/accrual"
	"github.com/dferrao/lendtrack-backend/internal/usecase/portfolio"
)

const dateLayout = "2006-01-02"

// Handler holds the portfolio service and handler-level defaults
type Handler struct {
	service      *portfolio.Service
	clock        domain.Clock
	defaultYears int
}

// NewHandler creates a new Handler
func NewHandler(service *portfolio.Service, clock domain.Clock, defaultYears int) *Handler {
	return &Handler{
		service:      service,
		clock:        clock,
		defaultYears: defaultYears,
	}
}

// investmentRequest is the JSON body for create and edit
// Monetary fields travel as strings to avoid float coercion on the wire.
type investmentRequest struct {
	Name         string `json:"name"`
	Principal    string `json:"principal"`
	InterestRate string `json:"interest_rate"`
	Frequency    string `json:"frequency"`
	StartDate    string `json:"start_date"`
}

type paymentRequest struct {
	Amount string `json:"amount"`
	Date   string `json:"date,omitempty"` // defaults to today when absent
}

type paymentResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

type investmentResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Principal    string            `json:"principal"`
	InterestRate string            `json:"interest_rate"`
	Frequency    string            `json:"frequency"`
	StartDate    string            `json:"start_date"`
	Status       string            `json:"status"`
	Payments     []paymentResponse `json:"payments"`
}

// investmentDetailResponse adds the derived figures the detail view shows
type investmentDetailResponse struct {
	investmentResponse
	InterestPerPeriod  string `json:"interest_per_period"`
	TotalPaid          string `json:"total_paid"`
	OutstandingBalance string `json:"outstanding_balance"`
	NextPaymentDate    string `json:"next_payment_date"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	snapshot := h.service.Snapshot(r.Context())

	out := make([]investmentResponse, 0, len(snapshot))
	for _, inv := range snapshot {
		out = append(out, toInvestmentResponse(inv))
	}

	respondWithJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInvestmentInput(w, r)
	if !ok {
		return
	}

	inv, err := h.service.Create(r.Context(), input)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, toInvestmentResponse(inv))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	inv, found := h.service.Get(r.Context(), id)
	if !found {
		respondWithError(w, http.StatusNotFound, "investment not found")
		return
	}

	respondWithJSON(w, http.StatusOK, h.toDetailResponse(inv))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	input, ok := h.decodeInvestmentInput(w, r)
	if !ok {
		return
	}

	inv, found, err := h.service.Edit(r.Context(), id, portfolio.EditInput(input))
	if !found {
		respondWithError(w, http.StatusNotFound, "investment not found")
		return
	}
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, toInvestmentResponse(inv))
}

func (h *Handler) handleLogPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid amount format")
		return
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		respondWithError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.Parse(dateLayout, req.Date)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
			return
		}
	}

	inv, found := h.service.LogPayment(r.Context(), id, amount, date)
	if !found {
		respondWithError(w, http.StatusNotFound, "investment not found")
		return
	}

	respondWithJSON(w, http.StatusOK, toInvestmentResponse(inv))
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	inv, found := h.service.Close(r.Context(), id)
	if !found {
		respondWithError(w, http.StatusNotFound, "investment not found")
		return
	}

	respondWithJSON(w, http.StatusOK, toInvestmentResponse(inv))
}

func (h *Handler) handleProjections(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	years := h.defaultYears
	if raw := r.URL.Query().Get("years"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid years parameter")
			return
		}
		years = parsed
	}

	inv, found := h.service.Get(r.Context(), id)
	if !found {
		respondWithError(w, http.StatusNotFound, "investment not found")
		return
	}

	respondWithJSON(w, http.StatusOK, accrual.ProjectEarnings(inv, years, h.clock.Now()))
}

// decodeInvestmentInput parses and validates the wire representation shared by
// create and edit. Reports false after writing an error response.
func (h *Handler) decodeInvestmentInput(w http.ResponseWriter, r *http.Request) (portfolio.CreateInput, bool) {
	var req investmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return portfolio.CreateInput{}, false
	}

	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid principal format")
		return portfolio.CreateInput{}, false
	}

	rate, err := decimal.NewFromString(req.InterestRate)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid interest_rate format")
		return portfolio.CreateInput{}, false
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid start_date format, expected YYYY-MM-DD")
		return portfolio.CreateInput{}, false
	}

	return portfolio.CreateInput{
		Name:         req.Name,
		Principal:    principal,
		InterestRate: rate,
		Frequency:    domain.Frequency(req.Frequency),
		StartDate:    startDate,
	}, true
}

func (h *Handler) toDetailResponse(inv domain.Investment) investmentDetailResponse {
	return investmentDetailResponse{
		investmentResponse: toInvestmentResponse(inv),
		InterestPerPeriod:  accrual.InterestPerPeriod(inv).String(),
		TotalPaid:          accrual.TotalPaid(inv).String(),
		OutstandingBalance: accrual.OutstandingBalance(inv).String(),
		NextPaymentDate:    accrual.NextPaymentDate(inv, h.clock.Now()).Format(dateLayout),
	}
}

func toInvestmentResponse(inv domain.Investment) investmentResponse {
	payments := make([]paymentResponse, 0, len(inv.Payments))
	for _, p := range inv.Payments {
		payments = append(payments, paymentResponse{
			ID:     p.ID.String(),
			Date:   p.Date.Format(dateLayout),
			Amount: p.Amount.String(),
		})
	}

	return investmentResponse{
		ID:           inv.ID.String(),
		Name:         inv.Name,
		Principal:    inv.Principal.String(),
		InterestRate: inv.InterestRate.String(),
		Frequency:    string(inv.Frequency),
		StartDate:    inv.StartDate.Format(dateLayout),
		Status:       string(inv.Status),
		Payments:     payments,
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid investment id")
		return uuid.Nil, false
	}
	return id, true
}

// respondWithJSON writes a JSON response with the given status code
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError writes a JSON error payload
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
