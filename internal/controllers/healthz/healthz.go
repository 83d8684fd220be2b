package healthz

import (
	"net/http"

	"github.com/envelope-zero/ledger/internal/httputil"
	"github.com/envelope-zero/ledger/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Error *string `json:"error" example:"sql: database is closed"` // The error, if any occurred
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Failure		500	{object}	Response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if models.DB == nil {
		s := "no database connection"
		c.JSON(http.StatusInternalServerError, Response{Error: &s})
		return
	}

	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, Response{Error: &s})
		return
	}

	c.JSON(http.StatusOK, Response{})
}
