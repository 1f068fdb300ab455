package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// errRequerido is the message every required-field rule reports, keyed by
// the JSON field name.
const errRequerido = "es requerido"

// normalizeOpcional maps absent and empty optional inputs to nil so the
// database stores NULL, never an empty string.
func normalizeOpcional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// parseID parses the :id path parameter.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("ID inválido")
	}
	return id, nil
}
