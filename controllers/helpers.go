package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Identificador inválido: "+raw)
		return 0, false
	}
	return uint(id), true
}

// respondDBError maps a storage error to 404 for missing rows and 500
// for everything else, naming the missing resource kind.
func respondDBError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusNotFound, notFoundMsg)
		return
	}
	log.Printf("❌ DB error: %v", err)
	utils.JSONError(c, http.StatusInternalServerError, "Error interno del servidor")
}

// readUpload pulls the multipart file out of the request, enforcing the
// type allow-list and size ceiling before any bytes reach the provider.
func readUpload(c *gin.Context, media *services.MediaService, field string) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Falta el archivo '"+field+"'")
		return nil, "", false
	}
	defer file.Close()

	if err := media.ValidateUpload(header.Filename, header.Size); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return nil, "", false
	}

	data, err := io.ReadAll(io.LimitReader(file, services.MaxUploadSize+1))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo leer el archivo")
		return nil, "", false
	}
	if int64(len(data)) > services.MaxUploadSize {
		utils.JSONError(c, http.StatusBadRequest, services.ErrFileTooLarge.Error())
		return nil, "", false
	}

	return data, header.Filename, true
}

// uploadToProvider forwards the bytes and translates failures: an
// unreachable provider is fatal to the request since there is no URL to
// persist.
func uploadToProvider(c *gin.Context, media *services.MediaService, data []byte, filename, folder string) (string, bool) {
	url, err := media.Upload(data, filename, folder)
	if err != nil {
		if errors.Is(err, services.ErrMediaNotConfigured) {
			utils.JSONError(c, http.StatusServiceUnavailable, "El proveedor de imágenes no está configurado")
			return "", false
		}
		log.Printf("❌ Upload failed: %v", err)
		utils.JSONError(c, http.StatusBadGateway, "No se pudo subir la imagen")
		return "", false
	}
	return url, true
}
