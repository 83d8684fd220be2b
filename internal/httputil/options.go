package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func options(c *gin.Context, allow string) {
	c.Header("allow", allow)
	c.Status(http.StatusNoContent)
}

func OptionsGet(c *gin.Context) {
	options(c, "OPTIONS, GET")
}

func OptionsGetPost(c *gin.Context) {
	options(c, "OPTIONS, GET, POST")
}

func OptionsGetPostDelete(c *gin.Context) {
	options(c, "OPTIONS, GET, POST, DELETE")
}

func OptionsGetPatchDelete(c *gin.Context) {
	options(c, "OPTIONS, GET, PATCH, DELETE")
}

func OptionsPatch(c *gin.Context) {
	options(c, "OPTIONS, PATCH")
}

func OptionsPut(c *gin.Context) {
	options(c, "OPTIONS, PUT")
}

func OptionsDelete(c *gin.Context) {
	options(c, "OPTIONS, DELETE")
}
