package visionservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом распознавания (детекция занятости
// слотов и распознавание номеров по изображению)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса распознавания
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// DetectSlots отправляет изображение парковки и возвращает занятость слотов
func (c *Client) DetectSlots(ctx context.Context, image []byte) (*DetectSlotsResponse, error) {
	url := fmt.Sprintf("%s/internal/vision/detect-slots", c.baseURL)

	body, err := c.post(ctx, url, image)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var result DetectSlotsResponse
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// DetectSlotsWithGracefulDegradation распознает занятость с graceful degradation
// При недоступности сервиса возвращает ErrServiceDegraded, что позволяет
// вызывающему работать по данным реестра без визуальной детекции
func (c *Client) DetectSlotsWithGracefulDegradation(ctx context.Context, image []byte) (*DetectSlotsResponse, error) {
	c.log.Info("Detecting slot occupancy, image_size=%d", len(image))

	result, err := c.DetectSlots(ctx, image)
	if err != nil {
		c.log.Error("VisionService unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: error=%v", ErrServiceDegraded, err)
	}

	c.log.Info("Successfully detected %d slots", len(result.Slots))
	return result, nil
}

// RecognizePlate отправляет изображение автомобиля и возвращает
// распознанный номер
func (c *Client) RecognizePlate(ctx context.Context, image []byte) (*RecognizePlateResponse, error) {
	url := fmt.Sprintf("%s/internal/vision/recognize-plate", c.baseURL)

	body, err := c.post(ctx, url, image)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var result RecognizePlateResponse
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.Plate == "" {
		return nil, ErrPlateNotRecognized
	}

	return &result, nil
}

// RecognizePlateWithGracefulDegradation распознает номер с graceful degradation
// При недоступности сервиса возвращает ErrServiceDegraded, что позволяет
// вызывающему перейти на ручной ввод номера
func (c *Client) RecognizePlateWithGracefulDegradation(ctx context.Context, image []byte) (*RecognizePlateResponse, error) {
	c.log.Info("Recognizing license plate, image_size=%d", len(image))

	result, err := c.RecognizePlate(ctx, image)
	if err != nil {
		// Нечитаемый номер - бизнес-ошибка, пробрасываем её дальше
		if err == ErrPlateNotRecognized {
			c.log.Info("No license plate recognized in image")
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("VisionService unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: error=%v", ErrServiceDegraded, err)
	}

	c.log.Info("Successfully recognized plate=%s, confidence=%.2f", result.Plate, result.Confidence)
	return result, nil
}

// post выполняет запрос с изображением и разбирает статус-коды ответа
func (c *Client) post(ctx context.Context, url string, image []byte) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusBadRequest:
		defer resp.Body.Close()
		return nil, fmt.Errorf("%w: invalid image payload", ErrInvalidResponse)
	case http.StatusUnprocessableEntity:
		resp.Body.Close()
		return nil, ErrPlateNotRecognized
	default:
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
