package admin

import (
	"net/http"
	"strings"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler"
)

// VoucherHandler handles voucher administration.
type VoucherHandler struct {
	vouchers domain.VoucherService
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(vouchers domain.VoucherService) *VoucherHandler {
	return &VoucherHandler{vouchers: vouchers}
}

// List handles GET /api/admin/vouchers
//
// Query: page, limit, search, status (active|expired).
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := domain.VoucherListParams{
		Page:   handler.QueryInt(r, "page", 1),
		Limit:  handler.QueryInt(r, "limit", domain.DefaultPageLimit),
		Search: strings.TrimSpace(q.Get("search")),
		Status: strings.ToLower(q.Get("status")),
	}

	page, err := h.vouchers.List(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, page)
}

// Get handles GET /api/admin/vouchers/{id}
func (h *VoucherHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	v, err := h.vouchers.Get(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, v)
}

// Create handles POST /api/admin/vouchers
func (h *VoucherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.VoucherInput
	if err := handler.Decode(r, "voucher.create", &in); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	v, err := h.vouchers.Create(r.Context(), in)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Created(w, v, "Voucher created successfully")
}

// Update handles PUT /api/admin/vouchers/{id}
func (h *VoucherHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var in domain.VoucherUpdate
	if err := handler.Decode(r, "voucher.update", &in); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	v, err := h.vouchers.Update(r.Context(), id, in)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, v)
}

// Delete handles DELETE /api/admin/vouchers/{id}
func (h *VoucherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.vouchers.Delete(r.Context(), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Message(w, "Voucher deleted successfully")
}
