package services

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUpload(t *testing.T) {
	m := &MediaService{}

	assert.NoError(t, m.ValidateUpload("photo.jpg", 100))
	assert.NoError(t, m.ValidateUpload("PHOTO.JPG", 100))
	assert.NoError(t, m.ValidateUpload("pic.webp", MaxUploadSize))

	assert.ErrorIs(t, m.ValidateUpload("doc.pdf", 100), ErrInvalidFileType)
	assert.ErrorIs(t, m.ValidateUpload("noext", 100), ErrInvalidFileType)
	assert.ErrorIs(t, m.ValidateUpload("photo.jpg", MaxUploadSize+1), ErrFileTooLarge)
}

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		url    string
		wantID string
		wantOK bool
	}{
		{
			"https://res.cloudinary.com/demo/image/upload/v1612345678/arman/covers/abc123.jpg",
			"arman/covers/abc123", true,
		},
		{
			"https://res.cloudinary.com/demo/image/upload/sample.png",
			"sample", true,
		},
		{
			"https://res.cloudinary.com/demo/image/upload/v999/single",
			"single", true,
		},
		{"https://example.com/image/upload/v1/x.jpg", "", false},
		{"https://res.cloudinary.com/demo/image/fetch/x.jpg", "", false},
		{"https://res.cloudinary.com/demo/image/upload/", "", false},
		{"not a url at all ://", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		id, ok := PublicIDFromURL(tc.url)
		assert.Equal(t, tc.wantOK, ok, "url=%q", tc.url)
		assert.Equal(t, tc.wantID, id, "url=%q", tc.url)
	}
}

func TestUploadSignsAndReturnsSecureURL(t *testing.T) {
	var gotForm map[string]string
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"public_id":      r.PostFormValue("public_id"),
			"api_key":        r.PostFormValue("api_key"),
			"timestamp":      r.PostFormValue("timestamp"),
			"transformation": r.PostFormValue("transformation"),
			"signature":      r.PostFormValue("signature"),
		}
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/testcloud/image/upload/v1/arman/abc.jpg"}`))
	}))
	defer fake.Close()

	m := newTestMedia(fake.URL)
	m.Folder = "arman"

	url, err := m.Upload([]byte("fake image bytes"), "photo.jpg", "covers")
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/testcloud/image/upload/v1/arman/abc.jpg", url)

	assert.Equal(t, "key", gotForm["api_key"])
	assert.NotEmpty(t, gotForm["public_id"])
	assert.Contains(t, gotForm["public_id"], "arman/covers/")
	assert.Equal(t, "c_limit,h_800,w_1200", gotForm["transformation"])

	expected := fmt.Sprintf("%x", sha1.Sum([]byte(fmt.Sprintf(
		"public_id=%s&timestamp=%s&transformation=%ssecret",
		gotForm["public_id"], gotForm["timestamp"], gotForm["transformation"],
	))))
	assert.Equal(t, expected, gotForm["signature"])
}

func TestUploadProviderError(t *testing.T) {
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"Invalid signature"}}`))
	}))
	defer fake.Close()

	_, err := newTestMedia(fake.URL).Upload([]byte("x"), "a.png", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid signature")
}

func TestUploadNotConfigured(t *testing.T) {
	m := &MediaService{}
	_, err := m.Upload([]byte("x"), "a.png", "")
	assert.ErrorIs(t, err, ErrMediaNotConfigured)
}

func TestUploadRejectsBadFileBeforeNetwork(t *testing.T) {
	m := newTestMedia("http://127.0.0.1:0") // must never be dialed
	_, err := m.Upload([]byte("x"), "malware.exe", "")
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestDeleteByURLSkipsForeignHosts(t *testing.T) {
	called := false
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer fake.Close()

	m := newTestMedia(fake.URL)
	m.DeleteByURL("https://example.com/image/upload/v1/pic.jpg")
	m.DeleteByURL("")
	assert.False(t, called)

	m.DeleteByURL("https://res.cloudinary.com/testcloud/image/upload/v1/arman/pic.jpg")
	assert.True(t, called)
}
