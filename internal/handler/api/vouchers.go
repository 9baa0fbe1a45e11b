package api

import (
	"net/http"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/dukerupert/foodmania/internal/telemetry"
)

// VoucherHandler validates voucher codes for the checkout page.
type VoucherHandler struct {
	vouchers domain.VoucherService
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(vouchers domain.VoucherService) *VoucherHandler {
	return &VoucherHandler{vouchers: vouchers}
}

// ValidateRequest is the body of POST /api/vouchers/validate/{code}.
type ValidateRequest struct {
	OrderAmount money.Cents `json:"orderAmount" validate:"gte=0"`
}

// Validate handles POST /api/vouchers/validate/{code}
func (h *VoucherHandler) Validate(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	var req ValidateRequest
	if err := handler.Decode(r, "voucher.validate", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	result, err := h.vouchers.Validate(r.Context(), code, req.OrderAmount)

	if telemetry.Business != nil {
		outcome := "valid"
		if err != nil {
			outcome = domain.ErrorCode(err)
		}
		telemetry.Business.VoucherApplied.WithLabelValues(outcome).Inc()
	}

	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.JSON(w, http.StatusOK, handler.Envelope{
		Success: true,
		Data:    result,
		Message: "Voucher is valid",
	})
}
