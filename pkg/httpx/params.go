package httpx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// QueryInt — целое из query-параметра key; пустое или отсутствующее значение даёт def.
// Нечисловое значение — ошибка: клиенту лучше узнать о ней, чем получить дефолт молча.
func QueryInt(c *gin.Context, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query %s=%q is not an integer", key, raw)
	}
	return v, nil
}
