package api

// Handlers for the facility-manager (pengelola) side of the dashboard:
// inventory, sales and operational reports.

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/internal/service"
	"github.com/eresik/eresik/pkg/entity"
	"github.com/eresik/eresik/pkg/httputil"
)

type RecordSaleRequest struct {
	Category   string  `json:"category"`
	WeightKg   float64 `json:"weight"`
	PricePerKg int64   `json:"price_per_kg"`
	Buyer      string  `json:"buyer"`
}

type GetStockResponse struct {
	Stock []entity.WasteStock `json:"stock"`
}

type GetSalesResponse struct {
	Sales []entity.SalesTransaction `json:"sales"`
}

type GetLeaderboardResponse struct {
	Leaderboard []entity.LeaderboardEntry `json:"leaderboard"`
}

type GetRegisteredUsersResponse struct {
	Users []entity.RegisteredUser `json:"users"`
}

type GetCategoriesResponse struct {
	Categories []entity.CategoryInfo `json:"categories"`
}

func (s *Server) GetStock(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stock, err := s.inventoryService.Stock(ctx)
	if err != nil {
		logger.Error("getting stock error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting stock", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetStockResponse{Stock: stock})
}

func (s *Server) GetSales(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	sales, err := s.inventoryService.Sales(ctx)
	if err != nil {
		logger.Error("getting sales error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting sales", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetSalesResponse{Sales: sales})
}

func (s *Server) RecordSale(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RecordSaleRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("record sale error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	sale, err := s.inventoryService.RecordSale(ctx, &service.RecordSaleInput{
		Category:   entity.WasteCategory(req.Category),
		WeightKg:   req.WeightKg,
		PricePerKg: req.PricePerKg,
		Buyer:      req.Buyer,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrStockNotFound):
			logger.Error("record sale error: unexist stock category")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no stock for such category", nil)
		case errors.Is(err, errorvalues.ErrInsufficientStock):
			logger.Error("record sale error: not enough stock")
			httputil.WriteErrorResponse(w, http.StatusConflict, "not enough stock to sell", nil)
		default:
			logger.Error("record sale error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid sale payload", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, sale)
	logger.Info("sale recorded", slog.Int64("sale_id", sale.ID))
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	leaderboard, err := s.reportsService.Leaderboard(ctx)
	if err != nil {
		logger.Error("getting leaderboard error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting leaderboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetLeaderboardResponse{Leaderboard: leaderboard})
}

func (s *Server) GetKPI(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	kpi, err := s.reportsService.KPI(ctx)
	if err != nil {
		logger.Error("getting kpi error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting kpi data", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, kpi)
}

func (s *Server) GetRegisteredUsers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	users, err := s.reportsService.RegisteredUsers(ctx)
	if err != nil {
		logger.Error("getting registered users error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting registered users", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetRegisteredUsersResponse{Users: users})
}

func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	categories, err := s.reportsService.Categories(ctx)
	if err != nil {
		logger.Error("getting categories error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting categories", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetCategoriesResponse{Categories: categories})
}
