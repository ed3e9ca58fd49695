// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	perrors "github.com/abgdnv/productstore/internal/errors"
	"github.com/abgdnv/productstore/internal/service"
	"github.com/abgdnv/productstore/internal/store"
	"github.com/abgdnv/productstore/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of Handler with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the product service.
// guard wraps the mutating routes, e.g. with bearer authentication.
func (h *Handler) RegisterRoutes(r chi.Router, guard ...func(http.Handler) http.Handler) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Get("/{id}", h.FindByID)

		r.Group(func(r chi.Router) {
			r.Use(guard...)
			r.Post("/", h.Add)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	h.logger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %s", id))
		return
	}
	if found == nil {
		h.logger.WarnContext(r.Context(), "Product not found", "ID", id)
		web.RespondError(w, h.logger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

// FindAll retrieves a list of all products.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.FindAll(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	if list == nil {
		list = []store.Product{}
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

// Add handles the creation or replacement of a product.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	product, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}
	if err := h.service.Add(r.Context(), product); err != nil {
		h.logger.ErrorContext(r.Context(), "Error adding product", "ID", product.ID, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to add product")
		return
	}
	h.logger.InfoContext(r.Context(), "Product added successfully", "ID", product.ID, "Name", product.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, product)
}

// Update saves the body product. The record written is the one keyed by the body id.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	product, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}
	if product.ID != id {
		h.logger.WarnContext(r.Context(), "Path ID differs from body ID, body ID is used", "path_id", id, "body_id", product.ID)
	}

	if err := h.service.Update(r.Context(), id, product); err != nil {
		h.logger.ErrorContext(r.Context(), "Error updating product", "ID", product.ID, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, fmt.Sprintf("Failed to update product with ID %s", product.ID))
		return
	}
	h.logger.InfoContext(r.Context(), "Product updated successfully", "ID", product.ID, "Name", product.Name)
	web.RespondJSON(w, h.logger, http.StatusOK, product)
}

// Delete deletes the product given in the body, or the one identified by the path when the body is empty.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	var product store.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil && !errors.Is(err, io.EOF) {
		h.logger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if product.ID == "" {
		product.ID = id
	} else if product.ID != id {
		h.logger.WarnContext(r.Context(), "Path ID differs from body ID, body ID is used", "path_id", id, "body_id", product.ID)
	}

	if err := h.service.Delete(r.Context(), product); err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			h.logger.WarnContext(r.Context(), "Product not found for deletion", "ID", product.ID)
			web.RespondError(w, h.logger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", product.ID))
			return
		}
		h.logger.ErrorContext(r.Context(), "Error deleting product", "ID", product.ID, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete product with ID %s", product.ID))
		return
	}
	h.logger.InfoContext(r.Context(), "Product deleted successfully", "ID", product.ID)
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// decodeProduct decodes and validates the request body, writing the 400 response on failure.
func (h *Handler) decodeProduct(w http.ResponseWriter, r *http.Request) (store.Product, bool) {
	var product store.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		h.logger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return product, false
	}

	if err := h.validate.Struct(product); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			h.logger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, h.logger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return product, false
		}
		h.logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return product, false
	}
	return product, true
}
