package cloudinary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4 payload"))
	}))
	defer server.Close()

	c := NewClient("demo", "preset")
	data, err := c.Fetch(context.Background(), server.URL+"/resumes/resume_abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 payload", string(data))
}

func TestUploadWithoutConfiguration(t *testing.T) {
	c := NewClient("", "preset")
	_, err := c.Upload(context.Background(), []byte("%PDF-1.4"), "resumes", "resume_abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestFetchNon200(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	c := NewClient("demo", "preset")
	_, err := c.Fetch(context.Background(), server.URL+"/missing.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
