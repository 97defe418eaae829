// Package web 提供前端静态资源 (index.html、css、js)。
// 默认使用编译进二进制的资源，也可以指定磁盘目录以便开发时直接修改。
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFiles embed.FS

// FileSystem 返回前端资源的文件系统；dir 为空时使用内嵌资源
func FileSystem(dir string) http.FileSystem {
	if dir != "" {
		return http.Dir(dir)
	}
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// static 目录在编译期已确定存在
		panic(err)
	}
	return http.FS(sub)
}

// Index 返回首页
func Index(files http.FileSystem) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.FileFromFS("/", files)
	}
}

// Serve 尝试提供静态文件 (目录除外)，找到时返回 true
func Serve(c *gin.Context, files http.FileSystem) bool {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		return false
	}
	name := path.Clean("/" + c.Request.URL.Path)
	f, err := files.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}
	c.FileFromFS(name, files)
	return true
}
