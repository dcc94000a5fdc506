package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yuzvak/nhh-storefront/internal/application/use_cases"
	"github.com/yuzvak/nhh-storefront/internal/domain/equipment"
	domainErrors "github.com/yuzvak/nhh-storefront/internal/domain/errors"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/middleware"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/response"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

const maxUploadBytes = 20 << 20

type EquipmentHandler struct {
	content *use_cases.ContentUseCase
	log     *logger.Logger
}

func NewEquipmentHandler(content *use_cases.ContentUseCase, log *logger.Logger) *EquipmentHandler {
	return &EquipmentHandler{content: content, log: log}
}

type specRequest struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SlugDTO struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (h *EquipmentHandler) HandleSlug(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	slug := equipment.Slugify(name)
	if !equipment.ValidSlug(slug) {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"name": "name must contain at least one letter or digit",
		})
		return
	}
	response.WriteSuccess(w, SlugDTO{Name: name, Slug: slug})
}

func (h *EquipmentHandler) HandleGetSpecs(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.content.Specs(r.Context(), chi.URLParam(r, "slug"))
	writeContent(w, sheet, err)
}

func (h *EquipmentHandler) HandleAddSpec(w http.ResponseWriter, r *http.Request) {
	var req specRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sheet, err := h.content.AddSpec(r.Context(), middleware.IsAdmin(r.Context()), chi.URLParam(r, "slug"), req.Label, req.Value)
	writeContent(w, sheet, err)
}

func (h *EquipmentHandler) HandleClearSpecs(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.content.ClearSpecs(r.Context(), middleware.IsAdmin(r.Context()), chi.URLParam(r, "slug"))
	writeContent(w, sheet, err)
}

func (h *EquipmentHandler) HandleGetDownloads(w http.ResponseWriter, r *http.Request) {
	downloads, err := h.content.Downloads(r.Context(), chi.URLParam(r, "slug"))
	writeContent(w, downloads, err)
}

// HandleUpload accepts a multipart form with the document in the "file" field.
func (h *EquipmentHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		response.WriteDomainError(w, domainErrors.ErrAdminRequired)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid upload", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"file": "file is required",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, response.StatusValidationError, "Invalid upload", err.Error())
		return
	}

	dl, err := h.content.Upload(r.Context(), true, chi.URLParam(r, "slug"), header.Filename, data)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}
	response.WriteCreated(w, dl)
}

func (h *EquipmentHandler) HandleRemoveDownload(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}

	downloads, err := h.content.RemoveDownload(r.Context(), middleware.IsAdmin(r.Context()), chi.URLParam(r, "slug"), index)
	writeContent(w, downloads, err)
}

func writeContent[T any](w http.ResponseWriter, data T, err error) {
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}
	response.WriteSuccess(w, data)
}
