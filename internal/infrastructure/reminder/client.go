// Package reminder integra el servicio externo que programa recordatorios de
// WhatsApp para las notas.
package reminder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/Flota-api/internal/application/usecase"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa ReminderScheduler.
var _ usecase.ReminderScheduler = (*Client)(nil)

// Client adaptador que implementa ReminderScheduler contra la API REST del
// programador de recordatorios. Usa net/http; no hay SDK.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. Si baseURL está vacío las llamadas
// devuelven error descriptivo en lugar de panic.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type scheduleRequest struct {
	NoteID         string    `json:"noteId"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Date           time.Time `json:"date"`
	WhatsappNumber string    `json:"whatsappNumber,omitempty"`
}

// Schedule envía la programación del recordatorio. El caller trata cualquier
// error como best-effort: se registra y la nota queda persistida igual.
func (c *Client) Schedule(ctx context.Context, note *entity.Note) error {
	if c.baseURL == "" {
		return fmt.Errorf("reminder: REMINDER_URL no configurado")
	}
	if note.Reminder == nil {
		return fmt.Errorf("reminder: la nota %s no tiene recordatorio", note.ID.Hex())
	}
	body, err := json.Marshal(scheduleRequest{
		NoteID:         note.ID.Hex(),
		Title:          note.Title,
		Content:        note.Content,
		Date:           note.Reminder.Date,
		WhatsappNumber: note.Reminder.WhatsappNumber,
	})
	if err != nil {
		return fmt.Errorf("reminder: serializar petición: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/reminders", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("reminder: construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reminder: llamada al programador: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("reminder: el programador respondió %d: %s", resp.StatusCode, payload)
	}
	return nil
}
