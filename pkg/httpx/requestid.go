package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gunvolt24/cleanpos/pkg/ctxmeta"
)

// HeaderRequestID — заголовок корреляции запроса.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen — клиентский id длиннее этого заменяется сгенерированным.
const maxRequestIDLen = 128

// RequestIDMiddleware:
// - принимает X-Request-ID от клиента (если он разумной длины и печатный) или генерирует UUID
// - кладёт request_id в контекст
// - возвращает его в ответном заголовке X-Request-ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if !acceptableRequestID(requestID) {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		ctx := ctxmeta.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
