package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

// HotelController handles the admin mutations on package hotels.
type HotelController struct {
	Svc   *services.HotelService
	Media *services.MediaService
}

func NewHotelController(svc *services.HotelService, media *services.MediaService) *HotelController {
	return &HotelController{Svc: svc, Media: media}
}

// POST /admin/packages/:id/hotels — structured JSON body.
func (ctl *HotelController) Create(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.HotelCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	hotel, err := ctl.Svc.Create(c.Request.Context(), packageID, input)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusCreated, hotel.View())
}

// POST /admin/packages/:id/hotels/upload — multipart: image file plus
// the hotel fields as form values.
func (ctl *HotelController) Upload(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		utils.JSONError(c, http.StatusBadRequest, "'name' is required")
		return
	}

	data, filename, ok := readUpload(c, ctl.Media, "file")
	if !ok {
		return
	}
	url, ok := uploadToProvider(c, ctl.Media, data, filename, "hotels")
	if !ok {
		return
	}

	days, _ := strconv.Atoi(c.PostForm("days"))
	input := services.HotelCreate{
		Name:                        name,
		Description:                 c.PostForm("description"),
		Image:                       url,
		Price:                       c.PostForm("price"),
		Destination:                 c.PostForm("destination"),
		Days:                        days,
		AllowUserDays:               c.PostForm("allow_user_days") == "true",
		AllowMultiplePerDestination: c.PostForm("allow_multiple_per_destination") == "true",
	}
	if amenities := c.PostFormArray("amenities"); len(amenities) > 0 {
		input.Amenities = amenities
	}

	hotel, err := ctl.Svc.Create(c.Request.Context(), packageID, input)
	if err != nil {
		respondDBError(c, err, "Paquete no encontrado")
		return
	}
	c.JSON(http.StatusCreated, hotel.View())
}

// PUT /admin/packages/:id/hotels/:hotelId — partial update.
func (ctl *HotelController) Update(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}
	hotelID, ok := parseID(c, "hotelId")
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	hotel, err := ctl.Svc.Update(c.Request.Context(), packageID, hotelID, fields)
	if err != nil {
		respondDBError(c, err, "Hotel no encontrado")
		return
	}
	c.JSON(http.StatusOK, hotel.View())
}

// DELETE /admin/packages/:id/hotels/:hotelId
func (ctl *HotelController) Delete(c *gin.Context) {
	packageID, ok := parseID(c, "id")
	if !ok {
		return
	}
	hotelID, ok := parseID(c, "hotelId")
	if !ok {
		return
	}

	if err := ctl.Svc.Delete(c.Request.Context(), packageID, hotelID); err != nil {
		respondDBError(c, err, "Hotel no encontrado")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Hotel eliminado correctamente")
}
