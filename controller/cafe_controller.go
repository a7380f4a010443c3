package controller

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"cafedir/database"
	"cafedir/model"
	"cafedir/utils"
)

const landingPage = `<!DOCTYPE html>
<html>
<head><title>Cafe Directory</title></head>
<body>
<h1>Cafe &amp; Wifi API</h1>
<p>A directory of cafes to work from. Try <a href="/random">/random</a> or <a href="/all">/all</a>.</p>
</body>
</html>`

func Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
}

func GetRandomCafe(c *gin.Context) {
	var cafes []model.Cafe
	if err := database.DB.Find(&cafes).Error; err != nil {
		internalError(c, err)
		return
	}

	if len(cafes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{"Not Found": "Sorry, there are no cafes in the database."},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafe": cafes[rand.IntN(len(cafes))]})
}

func GetAllCafes(c *gin.Context) {
	cafes := make([]model.Cafe, 0)
	if err := database.DB.Order("name ASC").Find(&cafes).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafes": cafes})
}

func SearchCafes(c *gin.Context) {
	loc, ok := c.GetQuery("loc")

	cafes := make([]model.Cafe, 0)
	if ok {
		if err := database.DB.Where("location = ?", loc).Find(&cafes).Error; err != nil {
			internalError(c, err)
			return
		}
	}

	if len(cafes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{"Not Found": "Sorry, we don't have a cafe at that location."},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafes": cafes})
}

func AddCafe(c *gin.Context) {
	type Request struct {
		Name     string `form:"name" binding:"required"`
		MapURL   string `form:"map_url" binding:"required"`
		ImgURL   string `form:"img_url" binding:"required"`
		Location string `form:"loc" binding:"required"`
		Seats    string `form:"seats" binding:"required"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"Bad Request": "name, map_url, img_url, loc and seats are required."},
		})
		return
	}

	cafe := model.Cafe{
		Name:         req.Name,
		MapURL:       req.MapURL,
		ImgURL:       req.ImgURL,
		Location:     req.Location,
		Seats:        req.Seats,
		HasSockets:   utils.ParseFormBool(c.PostForm("sockets")),
		HasToilet:    utils.ParseFormBool(c.PostForm("toilet")),
		HasWifi:      utils.ParseFormBool(c.PostForm("wifi")),
		CanTakeCalls: utils.ParseFormBool(c.PostForm("calls")),
	}
	if price, ok := c.GetPostForm("coffee_price"); ok {
		cafe.CoffeePrice = &price
	}

	if err := database.DB.Create(&cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"error": gin.H{"Conflict": "Sorry, a cafe with that name already exists in the database."},
			})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": "Successfully added the new cafe."},
	})
}

func UpdatePrice(c *gin.Context) {
	cafe, ok := cafeByID(c)
	if !ok {
		return
	}

	cafe.CoffeePrice = nil
	if price, present := c.GetQuery("new_price"); present {
		cafe.CoffeePrice = &price
	}

	if err := database.DB.Save(cafe).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": "Successfully updated the price."},
	})
}

// ReportClosed runs behind the api-key middleware: by the time it is
// called the caller has already proven knowledge of the secret.
func ReportClosed(c *gin.Context) {
	cafe, ok := cafeByID(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(cafe).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": "Successfully deleted the cafe from the database."},
	})
}

// cafeByID resolves the :id path segment to a row. A non-integer,
// non-positive, or unknown id gets the standard not-found body, matching
// the original router, where such ids never reached a handler.
func cafeByID(c *gin.Context) (*model.Cafe, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		notFoundID(c)
		return nil, false
	}

	var cafe model.Cafe
	if err := database.DB.First(&cafe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFoundID(c)
		} else {
			internalError(c, err)
		}
		return nil, false
	}

	return &cafe, true
}

func notFoundID(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": gin.H{"Not Found": "Sorry a cafe with that id was not found in the database."},
	})
}

func internalError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("Database operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{"Internal Server Error": "Something went wrong, please try again later."},
	})
}
