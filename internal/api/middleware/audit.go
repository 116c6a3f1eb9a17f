package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const auditBodyLimit = 16384

// 凭据字段不落日志，与 logger 包对 redis AUTH 参数的处理一致
var sensitiveFields = map[string]struct{}{
	"password": {},
	"token":    {},
}

var redactedValue = json.RawMessage(`"[PROTECTED]"`)

type auditBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *auditBodyWriter) Write(b []byte) (int, error) {
	if w.body.Len() < auditBodyLimit {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *auditBodyWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// redactBody 打码 JSON 对象顶层的敏感字段后返回可落日志的请求/响应体
func redactBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		// 非对象形态的 JSON（如目录代理的透传数据）不含凭据字段
		return string(body)
	}

	redacted := false
	for field := range payload {
		if _, ok := sensitiveFields[strings.ToLower(field)]; ok {
			payload[field] = redactedValue
			redacted = true
		}
	}
	if !redacted {
		return string(body)
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "[PROTECTED]"
	}
	return string(encoded)
}

// AuditMiddleware 记录请求与响应概要，凭据字段打码后落盘
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody))
		}

		decodedQuery, err := url.QueryUnescape(c.Request.URL.RawQuery)
		if err != nil {
			decodedQuery = c.Request.URL.RawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("req_body", redactBody(reqBody)),
		)

		w := &auditBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.String("res_body", redactBody(w.body.Bytes())),
		)
	}
}
