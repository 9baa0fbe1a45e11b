package admin

import (
	"errors"
	"io"
	"net/http"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler"
)

// maxImageMemory bounds the part of a multipart upload kept in memory.
const maxImageMemory = 8 << 20

// DishImageHandler handles dish image uploads.
type DishImageHandler struct {
	dishes domain.DishService
}

// NewDishImageHandler creates a new dish image handler
func NewDishImageHandler(dishes domain.DishService) *DishImageHandler {
	return &DishImageHandler{dishes: dishes}
}

// Upload handles POST /api/admin/dishes/{id}/image
//
// Expects multipart/form-data with the file in the "image" field. The
// content type is sniffed from the file, not taken from the client.
func (h *DishImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxImageMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handler.ErrorResponse(w, r, domain.Errorf(domain.ETOOLARGE, "dish.set_image", "Image upload is too large"))
			return
		}
		handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "dish.set_image", "Invalid form data"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		handler.ErrorResponse(w, r, domain.NewValidationError("dish.set_image", "image", "is required"))
		return
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, _ := io.ReadFull(file, buffer)
	contentType := http.DetectContentType(buffer[:n])
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		handler.InternalErrorResponse(w, r, err)
		return
	}

	dish, err := h.dishes.SetImage(r.Context(), id, domain.DishImage{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, dish)
}
