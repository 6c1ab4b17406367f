package httpx

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticFiles serves files below dir from the "filepath" wildcard and answers
// misses, directories included, with a plain-text 404.
func StaticFiles(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rel := filepath.FromSlash(strings.TrimPrefix(c.Param("filepath"), "/"))
		full := filepath.Join(dir, filepath.Clean("/"+rel))
		fi, err := os.Stat(full)
		if err != nil || fi.IsDir() {
			c.String(http.StatusNotFound, "File not found")
			return
		}
		c.File(full)
	}
}
