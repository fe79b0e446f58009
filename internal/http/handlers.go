package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"controle-financeiro-go/internal/models"
)

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (s *Server) inserirForm(c *gin.Context) {
	c.HTML(http.StatusOK, "inserir.html", nil)
}

func (s *Server) inserirConta(c *gin.Context) {
	nome := c.PostForm("nome")
	valor := c.PostForm("valor")
	vencimento := c.PostForm("vencimento")
	status := c.PostForm("status")

	if _, err := s.gateway.Inserir(c.Request.Context(), nome, valor, vencimento, status); err != nil {
		c.String(http.StatusInternalServerError, "Erro ao inserir conta")
		return
	}
	c.Redirect(http.StatusFound, "/listar")
}

func (s *Server) listarContas(c *gin.Context) {
	resumo, err := s.reconciler.Listagem(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao listar contas")
		return
	}

	c.HTML(http.StatusOK, "listar.html", gin.H{
		"contas":        resumo.Contas,
		"total_valor":   resumo.TotalValor,
		"total_pago":    resumo.TotalPago,
		"saldo_devedor": resumo.SaldoDevedor,
	})
}

func (s *Server) atualizarForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "conta não encontrado")
		return
	}

	contas, err := s.gateway.Listar(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao listar contas")
		return
	}

	for _, conta := range contas {
		if conta.ID == id {
			c.HTML(http.StatusOK, "atualizar.html", gin.H{"conta": conta})
			return
		}
	}
	c.String(http.StatusNotFound, "conta não encontrado")
}

func (s *Server) atualizarConta(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao atualizar conta")
		return
	}

	conta := models.Conta{
		ID:         id,
		Nome:       c.PostForm("nome"),
		Valor:      c.PostForm("valor"),
		Vencimento: c.PostForm("vencimento"),
		Status:     c.PostForm("status"),
	}

	if err := s.gateway.Atualizar(c.Request.Context(), conta); err != nil {
		c.String(http.StatusInternalServerError, "Erro ao atualizar conta")
		return
	}
	c.Redirect(http.StatusFound, "/listar")
}

func (s *Server) excluirConta(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusInternalServerError, "Erro ao excluir conta")
		return
	}

	if err := s.gateway.Excluir(c.Request.Context(), id); err != nil {
		c.String(http.StatusInternalServerError, "Erro ao excluir conta")
		return
	}
	c.Redirect(http.StatusFound, "/listar")
}

func (s *Server) resetDatabase(c *gin.Context) {
	if err := s.gateway.ResetDatabase(c.Request.Context()); err != nil {
		c.String(http.StatusInternalServerError, "Erro ao resetar o database")
		return
	}
	c.Redirect(http.StatusFound, "/")
}
