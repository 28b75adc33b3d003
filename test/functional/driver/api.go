package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

type FieldSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type APIDriver struct {
	baseURL string
	client  *http.Client
	role    string
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// ActAs sends every following request with the given role header.
func (d *APIDriver) ActAs(role string) {
	d.role = role
}

func (d *APIDriver) do(method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequest(method, d.baseURL+path, reader)
	if err != nil {
		panic(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if d.role != "" {
		req.Header.Set("X-User-ID", "functional-tester")
		req.Header.Set("X-User-Role", d.role)
	}
	return d.client.Do(req)
}

func (d *APIDriver) CreateForm(name, displayTitle string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/forms", map[string]any{
		"name":          name,
		"display_title": displayTitle,
		"language":      "en",
		"template":      1,
	})
}

func (d *APIDriver) ListForms() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/forms", nil)
}

func (d *APIDriver) GetForm(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/forms/%s", id), nil)
}

func (d *APIDriver) DeleteForm(id string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/forms/%s", id), nil)
}

func (d *APIDriver) AddFields(id string, fields []FieldSpec) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/forms/%s/fields", id), map[string]any{"fields": fields})
}

func (d *APIDriver) ListColumns(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/forms/%s/columns", id), nil)
}

func (d *APIDriver) EntryForm(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/forms/%s/entry", id), nil)
}

func (d *APIDriver) CreateRecord(formID string, values map[string]string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/forms/%s/records", formID), map[string]any{"values": values})
}

func (d *APIDriver) ListRecords(formID string, page int) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/forms/%s/records?page=%d&limit=10", formID, page), nil)
}

func (d *APIDriver) DeleteRecord(formID, recordID string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/forms/%s/records/%s", formID, recordID), nil)
}

func (d *APIDriver) ExportRecords(formID, format string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/forms/%s/export/%s", formID, format), nil)
}

// FollowRecordFeed opens the live record feed of a form.
func (d *APIDriver) FollowRecordFeed(formID string) (*websocket.Conn, error) {
	header := http.Header{}
	if d.role != "" {
		header.Set("X-User-ID", "functional-tester")
		header.Set("X-User-Role", d.role)
	}

	url := "ws" + strings.TrimPrefix(d.baseURL, "http") + fmt.Sprintf("/ws/forms/%s/records", formID)
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return conn, err
}
