package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/minproducer/kulana-cms/internal/domain/entities"
)

// ProgressFunc receives upload progress as a whole percentage, 0 through 100.
// Reported values never decrease.
type ProgressFunc func(percent int)

// LocalPreview renders image bytes as a data URI for instant UI feedback
// while the real upload is in flight. The preview is a transient local value
// and must never be persisted into a document.
func LocalPreview(data []byte, contentType string) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// progressReader reports monotonically non-decreasing progress proportional
// to bytes read from the underlying reader.
type progressReader struct {
	r        io.Reader
	total    int64
	read     int64
	last     int
	progress ProgressFunc
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.read += int64(n)
	if p.progress != nil && p.total > 0 {
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct > p.last {
			p.last = pct
			p.progress(pct)
		}
	}
	return n, err
}

// UploadImage uploads image bytes and returns the durable server URL. An
// empty file name or empty content short-circuits without a network call. A
// 401 clears the session; any other failure is returned to the caller, whose
// bound field must be reset rather than left holding a local preview.
func (c *Client) UploadImage(ctx context.Context, fileName string, data []byte, onProgress ProgressFunc) (string, error) {
	if fileName == "" || len(data) == 0 {
		return "", entities.ErrInvalidUpload
	}

	sess, err := c.session.Load()
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if sess.Token == "" {
		return "", entities.ErrUnauthorized
	}

	// Stream the body through a pipe so progress tracks what has actually
	// been handed to the transport, not a pre-buffered copy.
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	src := &progressReader{r: bytes.NewReader(data), total: int64(len(data)), progress: onProgress}

	go func() {
		part, err := writer.CreateFormFile("image", fileName)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-image-secure.php", pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+sess.Token)

	env, status, err := c.do(req)
	if err != nil {
		return "", err
	}

	if status == http.StatusUnauthorized {
		return "", c.unauthorized()
	}
	if !env.Success {
		return "", fmt.Errorf("upload %q: %s", fileName, env.Message)
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil || payload.URL == "" {
		return "", fmt.Errorf("malformed upload response")
	}

	if onProgress != nil {
		onProgress(100)
	}
	return payload.URL, nil
}

// UploadToField uploads image bytes and binds the result to field: the field
// holds a local data-URI preview while the upload is pending, the durable URL
// on success, and is reset to empty on any failure so a preview is never
// mistaken for a stored value.
func (c *Client) UploadToField(ctx context.Context, field *string, fileName, contentType string, data []byte, onProgress ProgressFunc) error {
	if fileName == "" || len(data) == 0 {
		return entities.ErrInvalidUpload
	}

	*field = LocalPreview(data, contentType)

	url, err := c.UploadImage(ctx, fileName, data, onProgress)
	if err != nil {
		*field = ""
		return err
	}

	*field = url
	return nil
}
