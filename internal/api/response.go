package api

import (
	"github.com/no0bAuntor/online-voting-system/internal/models"

	"github.com/gin-gonic/gin"
)

func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, models.APIResponse{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

func SendError(c *gin.Context, statusCode int, err error, errorCode string) {
	c.AbortWithStatusJSON(statusCode, models.APIResponse{
		StatusCode: statusCode,
		Error:      err.Error(),
		ErrorCode:  errorCode,
	})
}

// SendErrorWithData is SendError plus a payload, used where a failure carries
// context for the caller (the prior vote timestamp on a duplicate ballot).
func SendErrorWithData(c *gin.Context, statusCode int, err error, errorCode string, data interface{}) {
	c.AbortWithStatusJSON(statusCode, models.APIResponse{
		StatusCode: statusCode,
		Error:      err.Error(),
		ErrorCode:  errorCode,
		Data:       data,
	})
}
