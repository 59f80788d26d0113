package awards

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	interf "github.com/glkeru/hamawards/internal/interfaces"
	models "github.com/glkeru/hamawards/internal/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// UserHeader - id пользователя, проставляется шлюзом после аутентификации
const UserHeader = "X-User-ID"

type AwardsHandler struct {
	router    *mux.Router
	service   interf.AwardService
	catalogue interf.Catalogue
	awards    interf.AwardStorage
	claims    interf.ClaimStorage
	logger    *zap.Logger
}

type ApplyResponse struct {
	Success bool   `json:"success"`
	Serial  string `json:"serial"`
	Level   string `json:"level"`
}

type AuditRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewHandler(service interf.AwardService, catalogue interf.Catalogue, awards interf.AwardStorage, claims interf.ClaimStorage, logger *zap.Logger) *AwardsHandler {
	router := mux.NewRouter()
	handler := &AwardsHandler{router, service, catalogue, awards, claims, logger}
	router.Use(MiddlewareLog())

	router.HandleFunc("/awards/{id}/check", handler.CheckHandler).Methods(http.MethodGet)
	router.HandleFunc("/awards/{id}/apply", handler.ApplyHandler).Methods(http.MethodPost)
	router.HandleFunc("/qsos/{id}/awards", handler.ContactAwardsHandler).Methods(http.MethodGet)
	router.HandleFunc("/awards", handler.GetApprovedAwardsHandler).Methods(http.MethodGet)
	router.HandleFunc("/awards/all", handler.GetAllAwardsHandler).Methods(http.MethodGet)
	router.HandleFunc("/award/{id}", handler.GetAwardHandler).Methods(http.MethodGet)
	router.HandleFunc("/award", handler.SaveAwardHandler).Methods(http.MethodPost)
	router.HandleFunc("/award/{id}/audit", handler.AuditAwardHandler).Methods(http.MethodPost)
	router.HandleFunc("/award/{id}", handler.DeleteAwardHandler).Methods(http.MethodDelete)
	router.HandleFunc("/user/awards", handler.UserClaimsHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return handler
}

func (r *AwardsHandler) ServeHTTP(w http.ResponseWriter, res *http.Request) {
	r.router.ServeHTTP(w, res)
}

func (r *AwardsHandler) Log(msg string, service string, err error) {
	r.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// ответ JSON
func (r *AwardsHandler) writeJSON(w http.ResponseWriter, service string, status int, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		r.Log("Marshal", service, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(j)
}

// ошибка сервиса -> HTTP статус
func (r *AwardsHandler) writeError(w http.ResponseWriter, service string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrNotEligible), errors.Is(err, models.ErrAlreadyClaimed), errors.Is(err, models.ErrInvalidAudit):
		status = http.StatusBadRequest
	default:
		r.Log("Service error", service, err)
	}
	r.writeJSON(w, service, status, ErrorResponse{err.Error()})
}

func userID(w http.ResponseWriter, req *http.Request) (string, bool) {
	user := req.Header.Get(UserHeader)
	if user == "" {
		http.Error(w, "User is not authenticated", http.StatusUnauthorized)
		return "", false
	}
	return user, true
}

func awardID(w http.ResponseWriter, req *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(req)["id"])
	if err != nil {
		http.Error(w, "Award not found", http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// Проверка награды
func (r *AwardsHandler) CheckHandler(w http.ResponseWriter, req *http.Request) {
	user, ok := userID(w, req)
	if !ok {
		return
	}
	id, ok := awardID(w, req)
	if !ok {
		return
	}
	include, _ := strconv.ParseBool(req.URL.Query().Get("include_qsos"))

	result, err := r.service.Evaluate(req.Context(), user, id, include)
	if err != nil {
		r.writeError(w, "CheckHandler", err)
		return
	}
	r.writeJSON(w, "CheckHandler", http.StatusOK, result)
}

// Получение достигнутого уровня
func (r *AwardsHandler) ApplyHandler(w http.ResponseWriter, req *http.Request) {
	user, ok := userID(w, req)
	if !ok {
		return
	}
	id, ok := awardID(w, req)
	if !ok {
		return
	}

	claim, err := r.service.Claim(req.Context(), user, id)
	if err != nil {
		r.writeError(w, "ApplyHandler", err)
		return
	}
	r.writeJSON(w, "ApplyHandler", http.StatusOK, ApplyResponse{true, claim.SerialNumber, claim.Level})
}

// Награды, которым соответствует связь
func (r *AwardsHandler) ContactAwardsHandler(w http.ResponseWriter, req *http.Request) {
	user, ok := userID(w, req)
	if !ok {
		return
	}
	contactID, err := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)
	if err != nil {
		http.Error(w, "QSO not found", http.StatusNotFound)
		return
	}

	result, err := r.service.ContactAwards(req.Context(), user, contactID)
	if err != nil {
		r.writeError(w, "ContactAwardsHandler", err)
		return
	}
	r.writeJSON(w, "ContactAwardsHandler", http.StatusOK, result)
}

// Одобренные награды
func (r *AwardsHandler) GetApprovedAwardsHandler(w http.ResponseWriter, req *http.Request) {
	awards, err := r.awards.ListApprovedAwards(req.Context())
	if err != nil {
		r.writeError(w, "GetApprovedAwardsHandler", err)
		return
	}
	r.writeJSON(w, "GetApprovedAwardsHandler", http.StatusOK, awards)
}

// Все награды
func (r *AwardsHandler) GetAllAwardsHandler(w http.ResponseWriter, req *http.Request) {
	awards, err := r.awards.ListAllAwards(req.Context())
	if err != nil {
		r.writeError(w, "GetAllAwardsHandler", err)
		return
	}
	r.writeJSON(w, "GetAllAwardsHandler", http.StatusOK, awards)
}

// Получить награду
func (r *AwardsHandler) GetAwardHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := awardID(w, req)
	if !ok {
		return
	}
	award, err := r.awards.GetAward(req.Context(), id)
	if err != nil {
		r.writeError(w, "GetAwardHandler", err)
		return
	}
	r.writeJSON(w, "GetAwardHandler", http.StatusOK, award)
}

// Создать/обновить награду
func (r *AwardsHandler) SaveAwardHandler(w http.ResponseWriter, req *http.Request) {
	user, ok := userID(w, req)
	if !ok {
		return
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		r.Log("Get request body", "SaveAwardHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	award := models.Award{}
	err = json.Unmarshal(body, &award)
	if err != nil {
		r.Log("Unmarshal", "SaveAwardHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}

	saved, err := r.catalogue.SaveAward(req.Context(), award, user)
	if err != nil {
		r.writeError(w, "SaveAwardHandler", err)
		return
	}
	r.writeJSON(w, "SaveAwardHandler", http.StatusOK, saved)
}

// Проверка награды администратором
func (r *AwardsHandler) AuditAwardHandler(w http.ResponseWriter, req *http.Request) {
	user, ok := userID(w, req)
	if !ok {
		return
	}
	id, ok := awardID(w, req)
	if !ok {
		return
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		r.Log("Get request body", "AuditAwardHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	audit := AuditRequest{}
	err = json.Unmarshal(body, &audit)
	if err != nil {
		r.Log("Unmarshal", "AuditAwardHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}

	err = r.catalogue.AuditAward(req.Context(), id, audit.Action, audit.Reason, user)
	if err != nil {
		r.writeError(w, "AuditAwardHandler", err)
		return
	}
	r.writeJSON(w, "AuditAwardHandler", http.StatusOK, map[string]bool{"success": true})
}

// Удалить свою награду (draft/returned)
func (r *AwardsHandler) DeleteAwardHandler(w http.ResponseWriter, req *http.Request) {
	user, ok := userID(w, req)
	if !ok {
		return
	}
	id, ok := awardID(w, req)
	if !ok {
		return
	}
	err := r.catalogue.DeleteAward(req.Context(), id, user)
	if err != nil {
		r.writeError(w, "DeleteAwardHandler", err)
		return
	}
	r.writeJSON(w, "DeleteAwardHandler", http.StatusOK, map[string]bool{"success": true})
}

// Полученные пользователем уровни
func (r *AwardsHandler) UserClaimsHandler(w http.ResponseWriter, req *http.Request) {
	user, ok := userID(w, req)
	if !ok {
		return
	}
	claims, err := r.claims.ListUserClaims(req.Context(), user)
	if err != nil {
		r.writeError(w, "UserClaimsHandler", err)
		return
	}
	r.writeJSON(w, "UserClaimsHandler", http.StatusOK, claims)
}
