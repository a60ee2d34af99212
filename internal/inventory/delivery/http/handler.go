package http

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/domain"
	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/report"
	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/usecase/command"
	"github.com/fxckxanaxx/gestorregmarketing/internal/inventory/usecase/query"
	"github.com/fxckxanaxx/gestorregmarketing/kafka"
	"github.com/fxckxanaxx/gestorregmarketing/pkg/logger"
)

const dateLayout = "2006-01-02"

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_service_requests_total",
			Help: "Total number of requests to inventory service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_service_request_duration_seconds",
			Help:    "Duration of inventory service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "inventory_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_service_live_products",
			Help: "Number of products currently in the live set",
		},
	)
)

func init() {
	prometheus.MustRegister(requestCounter, requestLatency, requestSummary, totalProducts)
}

// InventoryHandler handles HTTP requests for the inventory using CQRS pattern
type InventoryHandler struct {
	// Command handlers
	createHandler   *command.CreateProductHandler
	updateHandler   *command.UpdateProductHandler
	progressHandler *command.AddProgressHandler
	completeHandler *command.CompleteProductHandler
	deleteHandler   *command.DeleteProductHandler
	archiveHandler  *command.ArchiveProductHandler
	clearHandler    *command.ClearHistoryHandler

	// Query handlers
	getHandler     *query.GetProductHandler
	listHandler    *query.ListProductsHandler
	statsHandler   *query.GetStatsHandler
	historyHandler *query.SalesHistoryHandler
	monthlyHandler *query.MonthlyReportHandler

	repo      domain.ProductRepository
	publisher *kafka.Publisher
}

// NewInventoryHandler creates a new inventory handler (manual DI)
func NewInventoryHandler(repo domain.ProductRepository, histRepo domain.HistoryRepository, publisher *kafka.Publisher) *InventoryHandler {
	return &InventoryHandler{
		createHandler:   command.NewCreateProductHandler(repo),
		updateHandler:   command.NewUpdateProductHandler(repo),
		progressHandler: command.NewAddProgressHandler(repo),
		completeHandler: command.NewCompleteProductHandler(repo),
		deleteHandler:   command.NewDeleteProductHandler(repo),
		archiveHandler:  command.NewArchiveProductHandler(repo),
		clearHandler:    command.NewClearHistoryHandler(histRepo),
		getHandler:      query.NewGetProductHandler(repo),
		listHandler:     query.NewListProductsHandler(repo),
		statsHandler:    query.NewGetStatsHandler(repo),
		historyHandler:  query.NewSalesHistoryHandler(histRepo),
		monthlyHandler:  query.NewMonthlyReportHandler(histRepo),
		repo:            repo,
		publisher:       publisher,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// productRequest is the shared create/update payload
type productRequest struct {
	ClientName  string  `json:"client_name"`
	ProductType string  `json:"product_type"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date"`
	Price       float64 `json:"price"`
	Notes       string  `json:"notes"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *InventoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/stats", h.metricsMiddleware("/api/products/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/progress", h.metricsMiddleware("/api/products/{id}/progress", h.AddProgress)).Methods("POST")
	router.HandleFunc("/api/products/{id}/complete", h.metricsMiddleware("/api/products/{id}/complete", h.CompleteProduct)).Methods("POST")

	router.HandleFunc("/api/history", h.metricsMiddleware("/api/history", h.SalesHistory)).Methods("GET")
	router.HandleFunc("/api/history", h.metricsMiddleware("/api/history", h.ClearHistory)).Methods("DELETE")
	router.HandleFunc("/api/reports/monthly", h.metricsMiddleware("/api/reports/monthly", h.MonthlyReport)).Methods("GET")

	router.HandleFunc("/api/export/csv", h.metricsMiddleware("/api/export/csv", h.ExportCSV)).Methods("GET")
	router.HandleFunc("/api/export/backup", h.metricsMiddleware("/api/export/backup", h.ExportBackup)).Methods("GET")
	router.HandleFunc("/api/export/report", h.metricsMiddleware("/api/export/report", h.ExportReport)).Methods("GET")
	router.HandleFunc("/api/export/monthly-report", h.metricsMiddleware("/api/export/monthly-report", h.ExportMonthlyReport)).Methods("GET")
	router.HandleFunc("/api/export/report.pdf", h.metricsMiddleware("/api/export/report.pdf", h.ExportReportPDF)).Methods("GET")
	router.HandleFunc("/api/export/product-analytics", h.metricsMiddleware("/api/export/product-analytics", h.ExportProductAnalytics)).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Inventory service is healthy",
		})
	}).Methods("GET")
}

// CreateProduct handles POST /api/products
func (h *InventoryHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid due_date, expected YYYY-MM-DD")
		return
	}

	cmd := command.CreateProductCommand{
		ClientName:  req.ClientName,
		ProductType: req.ProductType,
		Quantity:    req.Quantity,
		Size:        req.Size,
		Color:       req.Color,
		Status:      req.Status,
		DueDate:     dueDate,
		Price:       req.Price,
		Notes:       req.Notes,
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create product")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *InventoryHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{Term: r.URL.Query().Get("q")}

	products, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondError(w, http.StatusInternalServerError, "Failed to list products")
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    count,
		},
	})
}

// GetStats handles GET /api/products/stats
func (h *InventoryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute stats")
		respondError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *InventoryHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *InventoryHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid due_date, expected YYYY-MM-DD")
		return
	}

	cmd := command.UpdateProductCommand{
		ID:          id,
		ClientName:  req.ClientName,
		ProductType: req.ProductType,
		Quantity:    req.Quantity,
		Size:        req.Size,
		Color:       req.Color,
		Status:      req.Status,
		DueDate:     dueDate,
		Price:       req.Price,
		Notes:       req.Notes,
	}

	product, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update product")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}. The order is archived
// with action deleted, keeping whatever progress it had.
func (h *InventoryHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	sale, err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{ProductID: id})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to delete product")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.publishArchived(r, sale)
	h.updateProductsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted and archived",
		Data:    sale,
	})
}

// AddProgress handles POST /api/products/{id}/progress. When the addition
// finishes the order, the archival runs as an explicit follow-up step.
func (h *InventoryHandler) AddProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity int    `json:"quantity"`
		Notes    string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.progressHandler.Handle(r.Context(), command.AddProgressCommand{
		ProductID: id,
		Delta:     req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to add progress")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.publishProgress(r, result)

	data := map[string]interface{}{
		"product":  result.Product,
		"complete": result.NowComplete,
	}

	if result.NowComplete {
		today := time.Now().Truncate(24 * time.Hour)
		sale, err := h.archiveHandler.Handle(r.Context(), command.ArchiveProductCommand{
			ProductID:     id,
			Action:        domain.ActionCompleted,
			CompletedDate: &today,
		})
		if err != nil {
			// Progress is committed; the order stays live and fully
			// progressed until archival is retried
			logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to archive completed product")
			respondError(w, http.StatusInternalServerError, "Progress recorded but archival failed, retry completion")
			return
		}
		h.publishArchived(r, sale)
		h.updateProductsMetric()
		data["archived"] = sale
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: fmt.Sprintf("Progress added: +%d units", req.Quantity),
		Data:    data,
	})
}

// CompleteProduct handles POST /api/products/{id}/complete
func (h *InventoryHandler) CompleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	sale, err := h.completeHandler.Handle(r.Context(), command.CompleteProductCommand{ProductID: id})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to complete product")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.publishArchived(r, sale)
	h.updateProductsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product completed and archived",
		Data:    sale,
	})
}

// SalesHistory handles GET /api/history
func (h *InventoryHandler) SalesHistory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	sales, err := h.historyHandler.Handle(query.SalesHistoryQuery{Limit: limit})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load sales history")
		respondError(w, http.StatusInternalServerError, "Failed to load sales history")
		return
	}

	var completed, deleted int
	for i := range sales {
		switch sales[i].Action {
		case domain.ActionCompleted:
			completed++
		case domain.ActionDeleted:
			deleted++
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"sales":     sales,
			"completed": completed,
			"deleted":   deleted,
		},
	})
}

// ClearHistory handles DELETE /api/history
func (h *InventoryHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	count, err := h.clearHandler.Handle(command.ClearHistoryCommand{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to clear history")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: fmt.Sprintf("Removed %d history rows", count),
	})
}

// MonthlyReport handles GET /api/reports/monthly
func (h *InventoryHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month := monthParams(r)

	rep, err := h.monthlyHandler.Handle(query.MonthlyReportQuery{Year: year, Month: month})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build monthly report")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    rep,
	})
}

// ExportCSV handles GET /api/export/csv
func (h *InventoryHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	products, err := h.listHandler.Handle(query.ListProductsQuery{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load products")
		return
	}

	data, err := report.InventoryCSV(products)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to render CSV export")
		respondError(w, http.StatusInternalServerError, "Failed to render CSV")
		return
	}

	sendAttachment(w, data, "text/csv; charset=utf-8",
		fmt.Sprintf("reg_marketing_inventory_%s.csv", time.Now().Format(dateLayout)))
}

// ExportBackup handles GET /api/export/backup
func (h *InventoryHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	products, err := h.listHandler.Handle(query.ListProductsQuery{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load products")
		return
	}

	data, err := report.BackupJSON(products, time.Now())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to render backup")
		respondError(w, http.StatusInternalServerError, "Failed to render backup")
		return
	}

	sendAttachment(w, data, "application/json",
		fmt.Sprintf("reg_marketing_backup_%s.json", time.Now().Format(dateLayout)))
}

// ExportReport handles GET /api/export/report
func (h *InventoryHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	products, stats, ok := h.loadSnapshot(w)
	if !ok {
		return
	}

	text := report.SummaryText(stats, products, time.Now())
	sendAttachment(w, []byte(text), "text/plain; charset=utf-8",
		fmt.Sprintf("reg_marketing_report_%s.txt", time.Now().Format(dateLayout)))
}

// ExportMonthlyReport handles GET /api/export/monthly-report
func (h *InventoryHandler) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month := monthParams(r)

	rep, err := h.monthlyHandler.Handle(query.MonthlyReportQuery{Year: year, Month: month})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build monthly report")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	text := report.MonthlyText(rep, time.Now())
	sendAttachment(w, []byte(text), "text/plain; charset=utf-8",
		fmt.Sprintf("reg_marketing_monthly_%04d-%02d.txt", year, int(month)))
}

// ExportReportPDF handles GET /api/export/report.pdf
func (h *InventoryHandler) ExportReportPDF(w http.ResponseWriter, r *http.Request) {
	_, stats, ok := h.loadSnapshot(w)
	if !ok {
		return
	}

	data, err := report.SummaryPDF(stats, time.Now())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to render PDF export")
		respondError(w, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	sendAttachment(w, data, "application/pdf",
		fmt.Sprintf("reg_marketing_report_%s.pdf", time.Now().Format(dateLayout)))
}

// ExportProductAnalytics handles GET /api/export/product-analytics
func (h *InventoryHandler) ExportProductAnalytics(w http.ResponseWriter, r *http.Request) {
	products, err := h.listHandler.Handle(query.ListProductsQuery{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load products")
		return
	}

	data, err := report.ProductAnalyticsJSON(products, time.Now())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to render product analytics")
		respondError(w, http.StatusInternalServerError, "Failed to render product analytics")
		return
	}

	sendAttachment(w, data, "application/json",
		fmt.Sprintf("reg_marketing_analytics_%s.json", time.Now().Format(dateLayout)))
}

func (h *InventoryHandler) loadSnapshot(w http.ResponseWriter) ([]domain.Product, *query.DashboardStats, bool) {
	products, err := h.listHandler.Handle(query.ListProductsQuery{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load products")
		return nil, nil, false
	}
	return products, query.ComputeStats(products, time.Now()), true
}

// publishProgress emits the audit event; a publish failure never fails the
// request
func (h *InventoryHandler) publishProgress(r *http.Request, result *domain.ProgressResult) {
	if h.publisher == nil {
		return
	}
	err := h.publisher.PublishProgressRecorded(r.Context(), kafka.ProgressRecordedEvent{
		ProductID:      result.Product.ID,
		ClientName:     result.Product.ClientName,
		QuantityAdded:  result.Event.QuantityAdded,
		QuantityBefore: result.Event.QuantityBefore,
		QuantityAfter:  result.Event.QuantityAfter,
		NowComplete:    result.NowComplete,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint("product_id", result.Product.ID).Msg("Failed to publish progress event")
	}
}

func (h *InventoryHandler) publishArchived(r *http.Request, sale *domain.ArchivedSale) {
	if h.publisher == nil {
		return
	}
	err := h.publisher.PublishProductArchived(r.Context(), kafka.ProductArchivedEvent{
		OriginalProductID: sale.OriginalProductID,
		ClientName:        sale.ClientName,
		ProductType:       sale.ProductType,
		Action:            sale.Action,
		QuantityCompleted: sale.QuantityCompleted,
		TotalValue:        sale.TotalValue,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint("product_id", sale.OriginalProductID).Msg("Failed to publish archive event")
	}
}

func (h *InventoryHandler) updateProductsMetric() {
	if count, err := h.repo.Count(); err == nil {
		totalProducts.Set(float64(count))
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return 0, false
	}
	return uint(id), true
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, value)
}

func monthParams(r *http.Request) (int, time.Month) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && y > 0 {
		year = y
	}
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && m != 0 {
		month = time.Month(m)
	}
	return year, month
}

func sendAttachment(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}
