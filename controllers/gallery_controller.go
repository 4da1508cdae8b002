package controllers

import (
	"net/http"
	"strings"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

// GalleryController handles the admin mutations on package galleries.
type GalleryController struct {
	Svc   *services.GalleryService
	Media *services.MediaService
}

func NewGalleryController(svc *services.GalleryService, media *services.MediaService) *GalleryController {
	return &GalleryController{Svc: svc, Media: media}
}

type galleryURLPayload struct {
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption"`
	IsCover bool   `json:"is_cover"`
}

// POST /admin/packages/:id/gallery — add an image by raw URL. No
// filename is recorded; only uploads carry one.
func (ctl *GalleryController) AddByURL(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload galleryURLPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "'url' is required")
		return
	}

	image, err := ctl.Svc.Add(c.Request.Context(), packageID, payload.URL, nil, payload.Caption, payload.IsCover)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusCreated, image)
}

// POST /admin/packages/:id/gallery/upload — multipart upload.
func (ctl *GalleryController) Upload(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}

	data, filename, ok := readUpload(c, ctl.Media, "file")
	if !ok {
		return
	}
	url, ok := uploadToProvider(c, ctl.Media, data, filename, "gallery")
	if !ok {
		return
	}

	caption := strings.TrimSpace(c.PostForm("caption"))
	isCover := c.PostForm("is_cover") == "true"

	image, err := ctl.Svc.Add(c.Request.Context(), packageID, url, &filename, caption, isCover)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusCreated, image)
}

// PUT /admin/packages/:id/gallery/:imageId — partial update of caption,
// ordering or cover flag.
func (ctl *GalleryController) Update(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}
	imageID, ok := parseID(c, "imageId")
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	image, err := ctl.Svc.Update(c.Request.Context(), packageID, imageID, fields)
	if err != nil {
		respondDBError(c, err, "Imagen no encontrada")
		return
	}
	c.JSON(http.StatusOK, image)
}

// DELETE /admin/packages/:id/gallery/:imageId
func (ctl *GalleryController) Delete(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}
	imageID, ok := parseID(c, "imageId")
	if !ok {
		return
	}

	if err := ctl.Svc.Delete(c.Request.Context(), packageID, imageID); err != nil {
		respondDBError(c, err, "Imagen no encontrada")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Imagen eliminada correctamente")
}
