package sheets

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var ErrSheetsNotConfigured = errors.New("google sheets credentials not configured")

type Options struct {
	ServiceAccountEmail string
	PrivateKeyPEM       string
	SpreadsheetID       string
	TabName             string
	BaseURL             string
	TokenURL            string
	Timeout             time.Duration
}

// Client mirrors registrations into a Google Sheets tab through the Sheets v4
// REST API. Column A holds the registration id and is used to find rows.
type Client struct {
	http          *resty.Client
	token         *serviceAccountToken
	spreadsheetID string
	tab           string
}

var _ interfaces.IRegistrationSheet = (*Client)(nil)

func NewClient(opts Options) (*Client, error) {
	if opts.ServiceAccountEmail == "" || opts.PrivateKeyPEM == "" || opts.SpreadsheetID == "" {
		return nil, ErrSheetsNotConfigured
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(opts.PrivateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("parse google sheets private key: %w", err)
	}
	if opts.TabName == "" {
		opts.TabName = "Inscrições"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetRetryCount(2).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == 429 || r.StatusCode() >= 500
		})

	zap.L().Info("[sheets][client] initialized", zap.String("tab", opts.TabName))
	return &Client{
		http: client,
		token: &serviceAccountToken{
			client:   client,
			email:    opts.ServiceAccountEmail,
			key:      key,
			tokenURL: opts.TokenURL,
			now:      time.Now,
		},
		spreadsheetID: opts.SpreadsheetID,
		tab:           opts.TabName,
	}, nil
}

type valueRange struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values,omitempty"`
}

type writeRange struct {
	Values [][]interface{} `json:"values"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *Client) Append(ctx context.Context, r entities.Registration) error {
	if err := c.ensureHeader(ctx); err != nil {
		return err
	}
	if err := c.appendRows(ctx, [][]interface{}{formatRow(r)}); err != nil {
		return err
	}
	zap.L().Info("[sheets][client] row appended", zap.String("registration_id", r.ID))
	return nil
}

// Update rewrites the row whose column A equals r.ID, appending it when absent.
func (c *Client) Update(ctx context.Context, r entities.Registration) error {
	if err := c.ensureHeader(ctx); err != nil {
		return err
	}

	ids, err := c.getValues(ctx, c.tab+"!A:A")
	if err != nil {
		return err
	}
	rowNumber := 0
	for i, row := range ids {
		if len(row) > 0 && row[0] == r.ID {
			rowNumber = i + 1
			break
		}
	}
	if rowNumber == 0 {
		zap.L().Info("[sheets][client] row not found, appending", zap.String("registration_id", r.ID))
		return c.appendRows(ctx, [][]interface{}{formatRow(r)})
	}

	if err := c.putValues(ctx, fmt.Sprintf("%s!A%d", c.tab, rowNumber), "USER_ENTERED", [][]interface{}{formatRow(r)}); err != nil {
		return err
	}
	zap.L().Info("[sheets][client] row updated", zap.String("registration_id", r.ID), zap.Int("row", rowNumber))
	return nil
}

// ReplaceAll clears every row below the header and writes rs in order.
func (c *Client) ReplaceAll(ctx context.Context, rs []entities.Registration) error {
	if err := c.ensureHeader(ctx); err != nil {
		return err
	}
	if err := c.call(ctx, c.http.R().SetBody(map[string]any{}), resty.MethodPost, "/v4/spreadsheets/{id}/values/{range}:clear", c.tab+"!A2:ZZ", nil); err != nil {
		return err
	}
	if len(rs) == 0 {
		zap.L().Info("[sheets][client] sheet cleared, nothing to sync")
		return nil
	}

	rows := make([][]interface{}, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, formatRow(r))
	}
	if err := c.putValues(ctx, c.tab+"!A2", "USER_ENTERED", rows); err != nil {
		return err
	}
	zap.L().Info("[sheets][client] full sync done", zap.Int("rows", len(rows)))
	return nil
}

// ensureHeader rewrites row 1 when it differs from HeaderRow and creates the
// tab when the spreadsheet does not have it yet.
func (c *Client) ensureHeader(ctx context.Context) error {
	current, err := c.getValues(ctx, c.tab+"!1:1")
	if err != nil && strings.Contains(err.Error(), "Unable to parse range") {
		if err := c.addTab(ctx); err != nil {
			return err
		}
		current, err = nil, nil
	}
	if err != nil {
		return err
	}
	if len(current) > 0 && reflect.DeepEqual(current[0], HeaderRow) {
		return nil
	}

	header := make([]interface{}, len(HeaderRow))
	for i, h := range HeaderRow {
		header[i] = h
	}
	zap.L().Info("[sheets][client] header outdated, rewriting")
	return c.putValues(ctx, c.tab+"!A1", "RAW", [][]interface{}{header})
}

func (c *Client) addTab(ctx context.Context) error {
	body := map[string]any{
		"requests": []any{
			map[string]any{"addSheet": map[string]any{"properties": map[string]any{"title": c.tab}}},
		},
	}
	req := c.http.R().SetBody(body)
	req.SetPathParam("id", c.spreadsheetID)
	if err := c.do(ctx, req, resty.MethodPost, "/v4/spreadsheets/{id}:batchUpdate", nil); err != nil {
		return err
	}
	zap.L().Info("[sheets][client] tab created", zap.String("tab", c.tab))
	return nil
}

func (c *Client) getValues(ctx context.Context, rng string) ([][]string, error) {
	var out valueRange
	if err := c.call(ctx, c.http.R(), resty.MethodGet, "/v4/spreadsheets/{id}/values/{range}", rng, &out); err != nil {
		return nil, err
	}
	return out.Values, nil
}

func (c *Client) putValues(ctx context.Context, rng, inputOption string, rows [][]interface{}) error {
	req := c.http.R().
		SetQueryParam("valueInputOption", inputOption).
		SetBody(writeRange{Values: rows})
	return c.call(ctx, req, resty.MethodPut, "/v4/spreadsheets/{id}/values/{range}", rng, nil)
}

func (c *Client) appendRows(ctx context.Context, rows [][]interface{}) error {
	req := c.http.R().
		SetQueryParam("valueInputOption", "USER_ENTERED").
		SetBody(writeRange{Values: rows})
	return c.call(ctx, req, resty.MethodPost, "/v4/spreadsheets/{id}/values/{range}:append", c.tab+"!A:A", nil)
}

func (c *Client) call(ctx context.Context, req *resty.Request, method, path, rng string, result any) error {
	req.SetPathParams(map[string]string{"id": c.spreadsheetID, "range": rng})
	return c.do(ctx, req, method, path, result)
}

func (c *Client) do(ctx context.Context, req *resty.Request, method, path string, result any) error {
	token, err := c.token.Token(ctx)
	if err != nil {
		return err
	}

	var failure apiError
	req.SetContext(ctx).SetAuthToken(token).SetError(&failure)
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		zap.L().Error("[sheets][client] request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return err
	}
	if resp.IsError() {
		zap.L().Error("[sheets][client] api error",
			zap.String("method", method), zap.String("path", path),
			zap.Int("status", resp.StatusCode()), zap.String("message", failure.Error.Message))
		return fmt.Errorf("google sheets: status %d: %s", resp.StatusCode(), failure.Error.Message)
	}
	return nil
}
