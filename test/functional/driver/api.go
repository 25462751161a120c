package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const userIDHeader = "X-User-ID"

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string, client *http.Client) *APIDriver {
	if client == nil {
		client = &http.Client{}
	}
	return &APIDriver{
		baseURL: baseURL,
		client:  client,
	}
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.do(http.MethodGet, "/healthz", "", nil)
}

func (d *APIDriver) GetReadyz() (*http.Response, error) {
	return d.do(http.MethodGet, "/readyz", "", nil)
}

func (d *APIDriver) CreateUser(caller, username, email, password, role string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/users", caller, map[string]any{
		"username": username,
		"email":    email,
		"password": password,
		"role":     role,
	})
}

func (d *APIDriver) CreateTable(caller, name, displayName string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/tables", caller, map[string]any{
		"name":         name,
		"display_name": displayName,
	})
}

func (d *APIDriver) ListTables(caller string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/tables", caller, nil)
}

func (d *APIDriver) CreateField(caller, tableID string, field map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/tables/%s/fields", tableID), caller, field)
}

func (d *APIDriver) CreateRecord(caller, tableID string, values map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/tables/%s/records", tableID), caller, map[string]any{"values": values})
}

func (d *APIDriver) ListRecords(caller, tableID string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/tables/%s/records?limit=100", tableID), caller, nil)
}

func (d *APIDriver) GetRecord(caller, tableID, recordID string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/tables/%s/records/%s", tableID, recordID), caller, nil)
}

func (d *APIDriver) AddPermission(caller, tableID string, rule map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/tables/%s/permissions", tableID), caller, rule)
}

func (d *APIDriver) Export(caller, tableID string, request map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/tables/%s/export", tableID), caller, request)
}

func (d *APIDriver) PrintRecord(caller, tableID, recordID string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/tables/%s/records/%s/print", tableID, recordID), caller, nil)
}

func (d *APIDriver) GetDashboard(caller string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/dashboard", caller, nil)
}

func (d *APIDriver) UpdateGenericText(caller, name, content string) (*http.Response, error) {
	return d.do(http.MethodPut, "/v1/generic-texts/"+name, caller, map[string]any{"content": content})
}

func (d *APIDriver) PrintGenericText(caller, name string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/generic-texts/%s/print", name), caller, nil)
}

func (d *APIDriver) do(method, path, caller string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, d.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if caller != "" {
		req.Header.Set(userIDHeader, caller)
	}

	return d.client.Do(req)
}
