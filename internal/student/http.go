package student

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"student-service/internal/httputil"
	"student-service/internal/metrics"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewHandler(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/students", func(r chi.Router) {
		r.Post("/create-student", h.CreateStudent)
		r.Get("/", h.GetAllStudents)
		r.Get("/stats", h.GetStats)
		r.Get("/{studentId}", h.GetStudent)
		r.Put("/{studentId}", h.UpdateStudent)
		r.Delete("/{studentId}", h.DeleteStudent)
	})
}

func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req CreateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode request", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.InfoContext(r.Context(), "creating student", "student_id", deref(req.ID))
	created, err := h.service.CreateStudent(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) GetAllStudents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := Filter{
		Email:      query.Get("email"),
		Gender:     Gender(query.Get("gender")),
		BloodGroup: BloodGroup(query.Get("bloodGroup")),
		IsActive:   Status(query.Get("isActive")),
	}

	h.logger.InfoContext(r.Context(), "fetching all students")
	students, err := h.service.GetAllStudents(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	if students == nil {
		students = []Student{}
	}

	h.metrics.RecordStudentsListViewed(r.Context())

	httputil.RespondWithJSON(w, http.StatusOK, students)
}

func (h *Handler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "studentId")

	h.logger.InfoContext(r.Context(), "fetching student by ID", "student_id", id)
	student, err := h.service.GetStudent(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.metrics.RecordStudentViewed(r.Context())

	httputil.RespondWithJSON(w, http.StatusOK, student)
}

func (h *Handler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "studentId")

	var req CreateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode request", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.InfoContext(r.Context(), "updating student", "student_id", id)
	updated, err := h.service.UpdateStudent(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "studentId")

	h.logger.InfoContext(r.Context(), "deleting student", "student_id", id)
	if err := h.service.DeleteStudent(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var inputErr *InputValidationError
	if errors.As(err, &inputErr) {
		h.logger.InfoContext(r.Context(), "invalid student payload", "issues", len(inputErr.Issues))
		httputil.RespondWithValidation(w, httputil.ErrorResponse{Issues: inputErr.Issues})
		return
	}

	var storageErr *StorageValidationError
	if errors.As(err, &storageErr) {
		h.logger.InfoContext(r.Context(), "student document rejected", "field", storageErr.Field)
		httputil.RespondWithValidation(w, httputil.ErrorResponse{
			Field:   storageErr.Field,
			Message: storageErr.Message,
		})
		return
	}

	switch {
	case errors.Is(err, ErrStudentNotFound):
		h.logger.InfoContext(r.Context(), "student not found")
		httputil.RespondWithError(w, http.StatusNotFound, "Student not found")
	case errors.Is(err, ErrStudentExists):
		h.logger.InfoContext(r.Context(), "student already exists")
		httputil.RespondWithError(w, http.StatusConflict, "User already exists!")
	case errors.Is(err, ErrInvalidInput):
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "internal error", "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
