package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/catalog-import/internal/infrastructure/source"
)

const csvUTF8 = "İsim,SKU\nŞampuan,S-1\n"

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = w.Write([]byte("\xEF\xBB\xBF" + csvUTF8))
	}))
	defer srv.Close()

	src := source.NewHTTPSource(srv.URL+"/urunler.csv", time.Second)
	text, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csvUTF8, text, "el BOM se elimina")
	assert.Equal(t, srv.URL+"/urunler.csv", src.Describe())
}

func TestHTTPSource_StatusNoExitoso(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "yok", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := source.NewHTTPSource(srv.URL, time.Second).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPSource_CharsetDelContentType(t *testing.T) {
	encoded, err := charmap.Windows1254.NewEncoder().String(csvUTF8)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=windows-1254")
		_, _ = w.Write([]byte(encoded))
	}))
	defer srv.Close()

	text, err := source.NewHTTPSource(srv.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csvUTF8, text)
}

func TestHTTPSource_ErrorDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := source.NewHTTPSource(url, time.Second).Fetch(context.Background())
	require.Error(t, err)
}

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urunler.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvUTF8), 0o644))

	text, err := source.NewFileSource(path, "").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csvUTF8, text)
}

func TestFileSource_NoExiste(t *testing.T) {
	_, err := source.NewFileSource(filepath.Join(t.TempDir(), "yok.csv"), "").Fetch(context.Background())
	require.Error(t, err)
}

func TestDecodeText(t *testing.T) {
	latin, err := charmap.ISO8859_9.NewEncoder().String("Saç Bakımı")
	require.NoError(t, err)

	text, err := source.DecodeText([]byte(latin), "iso-8859-9")
	require.NoError(t, err)
	assert.Equal(t, "Saç Bakımı", text)

	_, err = source.DecodeText([]byte("x"), "no-existe-42")
	require.Error(t, err)

	text, err = source.DecodeText([]byte("a\xffb"), "")
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFDb", text, "bytes inválidos se reemplazan")
}
