// Package gateway is the HTTP client facade over the remote contas store.
// Every call is a fresh round trip: no retries, no local caching.
package gateway

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"controle-financeiro-go/internal/config"
	"controle-financeiro-go/internal/models"
)

//go:embed conta_list.schema.json
var contaListSchemaJSON []byte

// StatusError reports a non-success status from the contas store.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: conta API returned status %d", e.Op, e.Code)
}

// DecodeError reports a response body that does not decode into the expected
// shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client talks to the contas store. One long-lived http.Client is shared by
// all calls.
type Client struct {
	http       *http.Client
	baseURL    string
	resetURL   string
	listSchema *gojsonschema.Schema
}

func New(cfg *config.Config) *Client {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(contaListSchemaJSON))
	if err != nil {
		panic(err)
	}

	return &Client{
		http:       &http.Client{Timeout: time.Duration(cfg.ReqTimeoutSec) * time.Second},
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		resetURL:   cfg.APIDatabaseReset,
		listSchema: schema,
	}
}

// Inserir creates a conta. The store assigns the id and echoes the created
// record with status 201.
func (c *Client) Inserir(ctx context.Context, nome, valor, vencimento, status string) (*models.Conta, error) {
	payload := map[string]string{
		"nome":       nome,
		"valor":      valor,
		"vencimento": vencimento,
		"status":     status,
	}

	resp, err := c.postJSON(ctx, c.baseURL+"/inserir", payload)
	if err != nil {
		return nil, fmt.Errorf("inserir conta: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, &StatusError{Op: "inserir", Code: resp.StatusCode}
	}

	var conta models.Conta
	if err := json.NewDecoder(resp.Body).Decode(&conta); err != nil {
		return nil, &DecodeError{Op: "inserir", Err: err}
	}
	return &conta, nil
}

// Listar fetches the full collection. The body is validated against the
// conta-list schema before decoding so a shape mismatch surfaces as a
// DecodeError instead of silently zeroing fields.
func (c *Client) Listar(ctx context.Context) ([]models.Conta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/listar", nil)
	if err != nil {
		return nil, fmt.Errorf("listar contas: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listar contas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Op: "listar", Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listar contas: %w", err)
	}

	result, err := c.listSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, &DecodeError{Op: "listar", Err: err}
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return nil, &DecodeError{Op: "listar", Err: fmt.Errorf("schema: %s", strings.Join(details, "; "))}
	}

	var contas []models.Conta
	if err := json.Unmarshal(body, &contas); err != nil {
		return nil, &DecodeError{Op: "listar", Err: err}
	}
	return contas, nil
}

// Atualizar replaces every field of the conta identified by conta.ID.
func (c *Client) Atualizar(ctx context.Context, conta models.Conta) error {
	payload := map[string]any{
		"id":         conta.ID,
		"nome":       conta.Nome,
		"valor":      conta.Valor,
		"vencimento": conta.Vencimento,
		"status":     conta.Status,
	}

	resp, err := c.postJSON(ctx, c.baseURL+"/atualizar", payload)
	if err != nil {
		return fmt.Errorf("atualizar conta: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Op: "atualizar", Code: resp.StatusCode}
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

// Excluir removes one conta by id.
func (c *Client) Excluir(ctx context.Context, id int) error {
	resp, err := c.postJSON(ctx, c.baseURL+"/excluir", map[string]int{"id": id})
	if err != nil {
		return fmt.Errorf("excluir conta: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Op: "excluir", Code: resp.StatusCode}
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

// ResetDatabase destroys the whole collection on the store.
func (c *Client) ResetDatabase(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.resetURL, nil)
	if err != nil {
		return fmt.Errorf("resetar database: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("resetar database: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Op: "reset", Code: resp.StatusCode}
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) postJSON(ctx context.Context, url string, payload any) (*http.Response, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}
