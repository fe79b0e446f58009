package models

import (
	"strconv"
	"time"
)

// Status values the reconciler reads and writes. The store keeps status as
// free text; anything other than paga/vencida counts as still open.
const (
	StatusPendente = "pendente"
	StatusPaga     = "paga"
	StatusVencida  = "vencida"
)

// VencimentoLayout is the wire format for due dates (dia/mês/ano).
const VencimentoLayout = "02/01/2006"

// Conta is a billable item as stored by the contas API. Valor and Vencimento
// travel as text and are only parsed where aggregation or date comparison
// needs them.
type Conta struct {
	ID         int    `json:"id"`
	Nome       string `json:"nome"`
	Valor      string `json:"valor"`
	Vencimento string `json:"vencimento"`
	Status     string `json:"status"`
}

// ValorFloat parses the text-typed amount.
func (c Conta) ValorFloat() (float64, error) {
	return strconv.ParseFloat(c.Valor, 64)
}

// VencimentoTime parses the dd/mm/yyyy due date.
func (c Conta) VencimentoTime() (time.Time, error) {
	return time.Parse(VencimentoLayout, c.Vencimento)
}
