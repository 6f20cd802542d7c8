package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"peoplehub.com/peoplehub/peoplehub/v1/common"
)

type Response struct {
	Data []byte
}

// FileUpload is an attachment submitted with a multipart mutation. A nil
// *FileUpload on update leaves the stored attachment untouched.
type FileUpload struct {
	FieldName string
	FileName  string
	Content   []byte
}

// Transport handles low-level HTTP and authentication. Requests carry no
// timeout or cancellation; a request that never resolves simply never
// settles (the UI keeps its loading indicator up).
type Transport struct {
	BaseURL    string
	AuthToken  string
	HTTPClient *http.Client
}

// NewTransport creates a transport with base URL and bearer auth
func NewTransport(baseURL, token string) *Transport {
	return &Transport{
		BaseURL:    baseURL,
		AuthToken:  token,
		HTTPClient: &http.Client{},
	}
}

// helper: build full URL with query params
func (t *Transport) buildURL(path string, query map[string]string) string {
	u, _ := url.Parse(t.BaseURL + path)
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (t *Transport) do(req *http.Request, method, path string) (*Response, error) {
	if t.AuthToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", t.AuthToken))
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		return nil, common.NewAPIError(method, path, resp.StatusCode, body)
	}

	return &Response{Data: body}, nil
}

func (t *Transport) sendJSON(method, path string, data any, query map[string]string) (*Response, error) {
	fullURL := t.buildURL(path, query)

	var reader io.Reader
	if data != nil {
		body, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequest(method, fullURL, reader)
	if err != nil {
		return nil, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return t.do(req, method, path)
}

// Get sends a GET request
func (t *Transport) Get(path string, query map[string]string) (*Response, error) {
	return t.sendJSON(http.MethodGet, path, nil, query)
}

// Post sends a POST request with JSON body
func (t *Transport) Post(path string, data any, query map[string]string) (*Response, error) {
	return t.sendJSON(http.MethodPost, path, data, query)
}

// Patch sends a PATCH request with JSON body
func (t *Transport) Patch(path string, data any, query map[string]string) (*Response, error) {
	return t.sendJSON(http.MethodPatch, path, data, query)
}

// Delete sends a DELETE request
func (t *Transport) Delete(path string) (*Response, error) {
	return t.sendJSON(http.MethodDelete, path, nil, nil)
}

// SendMultipart sends a POST or PATCH with form fields plus an optional
// file part, used by announcement and document mutations.
func (t *Transport) SendMultipart(method, path string, fields map[string]string, file *FileUpload) (*Response, error) {
	fullURL := t.buildURL(path, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(method, fullURL, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return t.do(req, method, path)
}
