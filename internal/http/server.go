package http

import (
	"embed"
	"html/template"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"controle-financeiro-go/internal/config"
	"controle-financeiro-go/internal/gateway"
	"controle-financeiro-go/internal/reconciler"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Server struct {
	cfg        *config.Config
	gateway    *gateway.Client
	reconciler *reconciler.Reconciler
}

func NewServer(cfg *config.Config, gw *gateway.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging())

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	s := &Server{cfg: cfg, gateway: gw, reconciler: reconciler.New(gw)}

	r.GET("/", s.index)
	r.GET("/inserir", s.inserirForm)
	r.POST("/inserir", s.inserirConta)
	r.GET("/listar", s.listarContas)
	r.GET("/atualizar/:id", s.atualizarForm)
	r.POST("/atualizar/:id", s.atualizarConta)
	r.POST("/excluir/:id", s.excluirConta)
	r.GET("/reset-database", s.resetDatabase)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

func logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
