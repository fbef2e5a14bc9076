package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/wellcalc/investment-calculator/internal/calculation"
	"github.com/wellcalc/investment-calculator/internal/domain"
	money "github.com/wellcalc/investment-calculator/pkg/decimal"
	"go.uber.org/zap"
)

// Calculator page defaults used by /api/scenario for any missing field
var (
	DefaultGrowthRatePercent = decimal.NewFromInt(15)
	DefaultGrowthTermYears   = 20
	DefaultScenario          = domain.Scenario{
		Name:      "scenario",
		TermYears: 5,
		TaxShield: domain.TaxShieldInput{
			Investment:     decimal.NewFromInt(100000),
			TaxRatePercent: decimal.NewFromInt(37),
		},
		Oil: domain.WellRevenueInput{
			WorkingInterestPercent: decimal.NewFromInt(1),
			DailyRate:              decimal.NewFromInt(50),
			UnitPrice:              decimal.NewFromInt(80),
			MonthlyOpexPerWell:     decimal.NewFromInt(8000),
			SeveranceTaxPercent:    decimal.RequireFromString("4.6"),
		},
		Gas: domain.WellRevenueInput{
			WorkingInterestPercent: decimal.NewFromInt(1),
			DailyRate:              decimal.NewFromInt(300),
			UnitPrice:              decimal.RequireFromString("3.5"),
			MonthlyOpexPerWell:     decimal.NewFromInt(8000),
			SeveranceTaxPercent:    decimal.RequireFromString("4.6"),
		},
	}
)

// Price simulation defaults and limits for /api/simulate
var (
	DefaultSimulationRuns       = 1000
	MaxSimulationRuns           = 10000
	DefaultOilVolatilityPercent = decimal.NewFromInt(25)
	DefaultGasVolatilityPercent = decimal.NewFromInt(35)
)

type errorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, field, msg string) {
	s.metrics.InvalidInputs.WithLabelValues(field).Inc()
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg, Field: field, RequestID: RequestID(r.Context())})
}

// queryDecimal coerces a form value, using def only when the key is absent
func queryDecimal(q url.Values, key string, def decimal.Decimal) decimal.Decimal {
	if !q.Has(key) {
		return def
	}
	return money.CoerceNumber(q.Get(key))
}

func queryInt(q url.Values, key string, def int) int {
	if !q.Has(key) {
		return def
	}
	return money.CoerceInt(q.Get(key))
}

// validYears reports whether a hold period is within 0..MaxTermYears, answering 400 otherwise
func (s *Server) validYears(w http.ResponseWriter, r *http.Request, years int) bool {
	if years < 0 || years > calculation.MaxTermYears {
		s.badRequest(w, r, "years", fmt.Sprintf("years must be between 0 and %d", calculation.MaxTermYears))
		return false
	}
	return true
}

func (s *Server) daysPerMonth(q url.Values) decimal.Decimal {
	return s.engine.ResolveDaysPerMonth(queryDecimal(q, "days", s.cfg.DaysPerMonth))
}

func (s *Server) handleGrowth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := domain.GrowthInput{
		Principal:         decimal.NewFromInt(money.CoerceLeadingInt(q.Get("principal"))),
		AnnualRatePercent: queryDecimal(q, "rate", DefaultGrowthRatePercent),
		TermYears:         queryInt(q, "term", DefaultGrowthTermYears),
		Reinvest:          true,
	}
	if !calculation.IsAllowedRate(in.AnnualRatePercent) {
		s.badRequest(w, r, "rate", fmt.Sprintf("rate must be one of %v", calculation.AllowedRatePercents))
		return
	}
	if !calculation.IsAllowedTerm(in.TermYears) {
		s.badRequest(w, r, "term", fmt.Sprintf("term must be one of %v", calculation.AllowedTermYears))
		return
	}
	if q.Has("reinvest") {
		reinvest, err := strconv.ParseBool(q.Get("reinvest"))
		if err != nil {
			s.badRequest(w, r, "reinvest", "reinvest must be true or false")
			return
		}
		in.Reinvest = reinvest
	}

	s.writeJSON(w, http.StatusOK, calculation.ProjectGrowth(in))
}

func (s *Server) handleTaxShield(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := domain.TaxShieldInput{
		Investment:     money.CoerceNumber(q.Get("investment")),
		TaxRatePercent: money.CoerceNumber(q.Get("tax_rate")),
	}
	s.writeJSON(w, http.StatusOK, calculation.ProjectTaxShield(in))
}

func (s *Server) handleWellRevenue(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := domain.WellRevenueInput{
		WorkingInterestPercent: money.CoerceNumber(q.Get("working_interest")),
		DailyRate:              money.CoerceNumber(q.Get("daily_rate")),
		UnitPrice:              money.CoerceNumber(q.Get("price")),
		MonthlyOpexPerWell:     money.CoerceNumber(q.Get("opex")),
		SeveranceTaxPercent:    money.CoerceNumber(q.Get("severance")),
	}
	s.writeJSON(w, http.StatusOK, calculation.ProjectWellRevenue(in, s.daysPerMonth(q)))
}

func (s *Server) handleReturn(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	years := money.CoerceInt(q.Get("years"))
	if !s.validYears(w, r, years) {
		return
	}
	result := calculation.ProjectReturn(
		money.CoerceNumber(q.Get("net_investment")),
		money.CoerceNumber(q.Get("monthly_cash_flow")),
		years,
	)
	if !result.PaybackReached() {
		s.metrics.PaybackUnreached.Inc()
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleScenario runs the combined calculator; absent fields take the page defaults
func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sc := scenarioFromQuery(q)
	if !s.validYears(w, r, sc.TermYears) {
		return
	}

	report, err := s.engine.RunScenario(r.Context(), s.daysPerMonth(q), &sc)
	if err != nil {
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error(), RequestID: RequestID(r.Context())})
		return
	}
	if !report.Returns.PaybackReached() {
		s.metrics.PaybackUnreached.Inc()
	}
	s.writeJSON(w, http.StatusOK, report)
}

// handleSimulate runs a price simulation over the same inputs as /api/scenario
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sc := scenarioFromQuery(q)
	if !s.validYears(w, r, sc.TermYears) {
		return
	}

	runs := queryInt(q, "runs", DefaultSimulationRuns)
	if runs < 1 || runs > MaxSimulationRuns {
		s.badRequest(w, r, "runs", fmt.Sprintf("runs must be between 1 and %d", MaxSimulationRuns))
		return
	}
	var seed int64
	if q.Has("seed") {
		seed = money.CoerceLeadingInt(q.Get("seed"))
	}
	cfg := domain.PriceSimulationConfig{
		NumSimulations:            runs,
		Seed:                      seed,
		OilPriceVolatilityPercent: queryDecimal(q, "oil_volatility", DefaultOilVolatilityPercent),
		GasPriceVolatilityPercent: queryDecimal(q, "gas_volatility", DefaultGasVolatilityPercent),
	}

	result, err := s.engine.SimulatePrices(r.Context(), s.daysPerMonth(q), &sc, cfg, nil)
	if errors.Is(err, calculation.ErrInvalidSimulation) {
		s.badRequest(w, r, "volatility", err.Error())
		return
	}
	if err != nil {
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error(), RequestID: RequestID(r.Context())})
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func scenarioFromQuery(q url.Values) domain.Scenario {
	d := DefaultScenario
	sc := domain.Scenario{
		Name:      d.Name,
		TermYears: queryInt(q, "years", d.TermYears),
		TaxShield: domain.TaxShieldInput{
			Investment:     queryDecimal(q, "investment", d.TaxShield.Investment),
			TaxRatePercent: queryDecimal(q, "tax_rate", d.TaxShield.TaxRatePercent),
		},
		Oil: wellFromQuery(q, "oil_", d.Oil),
		Gas: wellFromQuery(q, "gas_", d.Gas),
	}
	if q.Has("name") {
		sc.Name = q.Get("name")
	}
	return sc
}

func wellFromQuery(q url.Values, prefix string, def domain.WellRevenueInput) domain.WellRevenueInput {
	return domain.WellRevenueInput{
		WorkingInterestPercent: queryDecimal(q, prefix+"working_interest", def.WorkingInterestPercent),
		DailyRate:              queryDecimal(q, prefix+"daily_rate", def.DailyRate),
		UnitPrice:              queryDecimal(q, prefix+"price", def.UnitPrice),
		MonthlyOpexPerWell:     queryDecimal(q, prefix+"opex", def.MonthlyOpexPerWell),
		SeveranceTaxPercent:    queryDecimal(q, prefix+"severance", def.SeveranceTaxPercent),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
