package services

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"travel-backend/config"

	"github.com/google/uuid"
)

// MaxUploadSize is the fixed ceiling for uploaded images.
const MaxUploadSize = 5 << 20 // 5 MiB

// uploadTransformation caps images at 1200x800 preserving aspect ratio
// without ever upscaling (c_limit).
const uploadTransformation = "c_limit,h_800,w_1200"

var (
	ErrMediaNotConfigured = errors.New("media provider is not configured")
	ErrInvalidFileType    = errors.New("file type not allowed (jpg, jpeg, png, gif, webp, jfif, bmp)")
	ErrFileTooLarge       = errors.New("file exceeds the 5MB size limit")
)

var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".jfif": true, ".bmp": true,
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// MediaService forwards uploads to Cloudinary using SHA-1 signed form
// posts and reverses its URL scheme to issue deletions.
type MediaService struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string

	// BaseURL is overridable so tests can point at a fake provider.
	BaseURL string
	Client  *http.Client
}

func NewMediaService(cfg *config.Config) *MediaService {
	return &MediaService{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		Folder:    cfg.CloudinaryFolder,
		BaseURL:   "https://api.cloudinary.com/v1_1",
		Client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (m *MediaService) Configured() bool {
	return m.CloudName != "" && m.APIKey != "" && m.APISecret != ""
}

// ValidateUpload rejects disallowed extensions and oversized files with
// distinct errors so the response can say which rule was broken.
func (m *MediaService) ValidateUpload(filename string, size int64) error {
	ext := strings.ToLower(path.Ext(filename))
	if !allowedExtensions[ext] {
		return ErrInvalidFileType
	}
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}

// Upload sends the raw bytes to the provider under a fresh UUID public ID
// and returns the canonical secure URL. folder is a hint appended under
// the account folder ("covers", "gallery", "hotels").
func (m *MediaService) Upload(data []byte, filename, folder string) (string, error) {
	if !m.Configured() {
		return "", ErrMediaNotConfigured
	}
	if err := m.ValidateUpload(filename, int64(len(data))); err != nil {
		return "", err
	}

	publicID := uuid.NewString()
	if folder != "" {
		publicID = folder + "/" + publicID
	}
	if m.Folder != "" {
		publicID = m.Folder + "/" + publicID
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Signed params in alphabetical order, then the API secret.
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s&transformation=%s%s",
		publicID, timestamp, uploadTransformation, m.APISecret)
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(signatureString)))

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(data))
	form.Add("api_key", m.APIKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)
	form.Add("transformation", uploadTransformation)
	form.Add("signature", signature)

	endpoint := fmt.Sprintf("%s/%s/image/upload", m.BaseURL, m.CloudName)
	body, err := m.postForm(endpoint, form)
	if err != nil {
		return "", err
	}

	var res struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("parse upload response: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("provider rejected upload: %s", res.Error.Message)
	}

	out := res.SecureURL
	if out == "" {
		out = res.URL
	}
	if out == "" {
		return "", errors.New("provider returned no URL")
	}
	return out, nil
}

// PublicIDFromURL recovers the provider asset identifier from a delivery
// URL: take the path after the fixed "upload" segment, drop a leading
// v<digits> version segment, strip the file extension. Returns false for
// URLs that do not belong to the provider — routine for legacy content.
func PublicIDFromURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || !strings.HasSuffix(u.Hostname(), "cloudinary.com") {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	uploadIdx := -1
	for i, seg := range segments {
		if seg == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 0 || uploadIdx == len(segments)-1 {
		return "", false
	}

	rest := segments[uploadIdx+1:]
	if versionSegment.MatchString(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", false
	}

	last := rest[len(rest)-1]
	if ext := path.Ext(last); ext != "" {
		rest[len(rest)-1] = strings.TrimSuffix(last, ext)
	}

	publicID := strings.Join(rest, "/")
	if publicID == "" {
		return "", false
	}
	return publicID, true
}

// DeleteByURL issues a best-effort destroy call for a provider-hosted
// asset. Non-provider URLs are skipped without error.
func (m *MediaService) DeleteByURL(rawURL string) {
	publicID, ok := PublicIDFromURL(rawURL)
	if !ok {
		return
	}
	if !m.Configured() {
		log.Printf("warning: provider not configured, cannot delete asset %s", publicID)
		return
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, m.APISecret)
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(signatureString)))

	form := url.Values{}
	form.Add("public_id", publicID)
	form.Add("api_key", m.APIKey)
	form.Add("timestamp", timestamp)
	form.Add("signature", signature)

	endpoint := fmt.Sprintf("%s/%s/image/destroy", m.BaseURL, m.CloudName)
	body, err := m.postForm(endpoint, form)
	if err != nil {
		log.Printf("warning: failed to delete asset %s: %v", publicID, err)
		return
	}

	var res struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(body, &res); err != nil || res.Result != "ok" {
		log.Printf("warning: provider did not confirm deletion of %s (result=%q)", publicID, res.Result)
		return
	}
	log.Printf("Deleted asset %s at media provider", publicID)
}

func (m *MediaService) postForm(endpoint string, form url.Values) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := m.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d: %s", res.StatusCode, body)
	}
	return body, nil
}
