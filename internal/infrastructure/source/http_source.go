package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPSource descarga el export con un GET. Status no 2xx es un error.
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSource construye la fuente. timeout <= 0 usa 30 s.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSource{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Describe identifica la fuente en logs y errores.
func (s *HTTPSource) Describe() string { return s.url }

// Fetch descarga y decodifica el CSV usando el charset del Content-Type (UTF-8 por defecto).
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drenar para reutilizar la conexión
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("HTTP status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("leer respuesta: %w", err)
	}
	return DecodeText(body, charsetFromContentType(resp.Header.Get("Content-Type")))
}
