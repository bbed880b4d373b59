// Package media реализует клиент внешнего хостинга изображений.
// Сервис каталога не хранит файлы сам: изображения загружаются на хостинг,
// а в базе остаются только URL доставки.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client — HTTP-клиент API хостинга изображений.
type Client struct {
	apiKey     string
	apiSecret  string
	apiURL     string
	httpClient *http.Client
}

// UploadRequest — параметры загрузки изображения по URL.
type UploadRequest struct {
	File     string `json:"file"`      // Исходный URL изображения
	Folder   string `json:"folder"`    // Каталог на хостинге
	PublicID string `json:"public_id"` // Необязательный идентификатор
}

// UploadResult — ответ хостинга на загрузку.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
}

// NewClient создаёт новый клиент хостинга изображений.
func NewClient(apiURL, apiKey, apiSecret string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		apiURL:     strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, &buf)
	if err != nil {
		return nil, err
	}
	auth := base64.StdEncoding.EncodeToString([]byte(c.apiKey + ":" + c.apiSecret))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// UploadFromURL загружает изображение на хостинг по его исходному URL
// и возвращает данные загруженного файла.
func (c *Client) UploadFromURL(ctx context.Context, imageURL, folder string) (*UploadResult, error) {
	const op = "media.UploadFromURL"
	req, err := c.newRequest(ctx, http.MethodPost, "/image/upload", UploadRequest{
		File:   imageURL,
		Folder: folder,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%s: %w", op, errors.New("unexpected status: "+resp.Status))
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// OptimizedURL строит URL доставки с трансформацией размера и автокачеством.
// Нулевые размеры опускаются.
func (c *Client) OptimizedURL(publicID string, width, height int) string {
	params := []string{"f_auto", "q_auto"}
	if width > 0 {
		params = append(params, fmt.Sprintf("w_%d", width))
	}
	if height > 0 {
		params = append(params, fmt.Sprintf("h_%d", height))
	}
	return c.apiURL + "/image/" + strings.Join(params, ",") + "/" + url.PathEscape(publicID)
}
