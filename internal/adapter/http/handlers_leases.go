package http

import (
	"net/http"

	"github.com/rentfold/rentfold/internal/domain/lease"
)

// uploadFormField is the multipart field carrying the document.
const uploadFormField = "document"

// UploadLeaseDocument attaches a document to a lease from a multipart form.
func (h *Handlers) UploadLeaseDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, lease.MaxDocumentSize+(1<<16))
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "document too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing document field")
		return
	}
	defer file.Close()

	l, err := h.Leases.AttachDocument(r.Context(), id, header.Filename, file, header.Size)
	if err != nil {
		writeDomainError(w, err, "lease not found")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// DeleteLeaseDocument detaches the document from a lease.
func (h *Handlers) DeleteLeaseDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.Leases.DetachDocument(r.Context(), id); err != nil {
		writeDomainError(w, err, "document not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
