package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/culturiq/engine/internal/domain/unlock"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

// ResourcePresigner issues time-limited download URLs for stored resource
// files.
type ResourcePresigner interface {
	PresignedDownload(ctx context.Context, storagePath string) (string, error)
}

// GrantChecker answers whether a respondent holds a given grant.
type GrantChecker interface {
	Has(ctx context.Context, respondentID string, grant unlock.Grant) (bool, error)
}

// ResourceHandler serves the downloadable resource library.  The catalog is
// public; downloads require the respondent to hold the matching grant.
type ResourceHandler struct {
	grants    GrantChecker
	presigner ResourcePresigner
	logger    logging.Logger
}

// NewResourceHandler creates a ResourceHandler.
func NewResourceHandler(grants GrantChecker, presigner ResourcePresigner, logger logging.Logger) *ResourceHandler {
	return &ResourceHandler{grants: grants, presigner: presigner, logger: logger}
}

// resourceView is the public metadata of one resource.
type resourceView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	FullTitle   string `json:"fullTitle"`
	Description string `json:"description"`
	Format      string `json:"format"`
	Size        string `json:"size"`
	Category    string `json:"category"`
	UnlockedBy  string `json:"unlockedBy"`
}

func toResourceView(r unlock.Resource) resourceView {
	return resourceView{
		ID:          r.ID,
		Title:       r.Title,
		FullTitle:   r.FullTitle,
		Description: r.Description,
		Format:      r.Format,
		Size:        r.Size,
		Category:    r.Category,
		UnlockedBy:  string(r.UnlockedBy),
	}
}

// List handles GET /api/v1/resources.  Storage paths stay server-side.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	all := unlock.AllResources()
	views := make([]resourceView, 0, len(all))
	for _, res := range all {
		views = append(views, toResourceView(res))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"resources": views})
}

// downloadResponse carries the presigned URL for a granted resource.
type downloadResponse struct {
	ResourceID  string `json:"resourceId"`
	DownloadURL string `json:"downloadUrl"`
}

// Download handles GET /api/v1/respondents/{id}/resources/{resourceID}/download.
// The respondent must hold the resource grant; a presigned URL is returned
// rather than the file itself.
func (h *ResourceHandler) Download(w http.ResponseWriter, r *http.Request) {
	respondentID := chi.URLParam(r, "id")
	resourceID := chi.URLParam(r, "resourceID")
	if respondentID == "" || resourceID == "" {
		writeError(w, h.logger, errors.New(errors.ErrCodeBadRequest, "respondent id and resource id are required"))
		return
	}

	resource, ok := unlock.ResourceByID(resourceID)
	if !ok {
		writeError(w, h.logger, errors.New(errors.ErrCodeResourceNotFound, "unknown resource").
			WithDetail(resourceID))
		return
	}

	held, err := h.grants.Has(r.Context(), respondentID, unlock.Grant{Kind: unlock.GrantResource, Key: resourceID})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if !held {
		writeError(w, h.logger, errors.Newf(errors.ErrCodeResourceLocked,
			"resource %s is unlocked by completing the %s assessment", resourceID, resource.UnlockedBy))
		return
	}

	url, err := h.presigner.PresignedDownload(r.Context(), resource.StoragePath)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, downloadResponse{ResourceID: resourceID, DownloadURL: url})
}
