package response

import "github.com/gin-gonic/gin"

// Error is the JSON body sent for every failed request. Success responses
// carry the resource payload directly; the shapes are part of the public
// API contract and must stay stable.
type Error struct {
	Success bool              `json:"success"`
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Fail sends an error response with a typed code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, Error{Code: code, Message: GetMessage(code)})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, Error{Code: code, Message: GetMessage(code), Fields: fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, Error{Code: code, Message: GetMessage(code)})
}
