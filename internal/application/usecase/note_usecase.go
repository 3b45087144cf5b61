package usecase

import (
	"context"
	"regexp"
	"time"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
	"github.com/jhoicas/Flota-api/pkg/logger"
)

// ReminderScheduler puerto hacia el servicio externo que programa los
// recordatorios de WhatsApp. La llamada es best-effort: un fallo se registra
// en el log pero nunca revierte la escritura de la nota.
type ReminderScheduler interface {
	Schedule(ctx context.Context, note *entity.Note) error
}

// Formato E.164 (hasta 15 dígitos, sin ceros a la izquierda).
var whatsappNumberRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// NoteUseCase casos de uso para notas administrativas y sus recordatorios.
type NoteUseCase struct {
	repo      repository.NoteRepository
	scheduler ReminderScheduler
	log       *logger.Logger
}

// NewNoteUseCase construye el caso de uso.
func NewNoteUseCase(repo repository.NoteRepository, scheduler ReminderScheduler, log *logger.Logger) *NoteUseCase {
	return &NoteUseCase{repo: repo, scheduler: scheduler, log: log}
}

// Create valida y crea una nota. Si trae recordatorio, lo programa una sola
// vez, después de persistir.
func (uc *NoteUseCase) Create(ctx context.Context, in dto.CreateNoteRequest) (*entity.Note, error) {
	if in.Title == "" || in.Content == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Priority == "" {
		in.Priority = entity.NotePriorityMedium
	}
	if !entity.ValidNotePriority(in.Priority) {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.NoteStatusActive
	}
	if !entity.ValidNoteStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if err := validateReminder(in.Reminder); err != nil {
		return nil, err
	}
	now := time.Now()
	note := &entity.Note{
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		Priority:  in.Priority,
		Status:    in.Status,
		Reminder:  in.Reminder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	uc.scheduleReminder(ctx, note)
	return note, nil
}

// GetByID obtiene una nota. Devuelve (nil, nil) si no existe.
func (uc *NoteUseCase) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista todas las notas, más recientes primero.
func (uc *NoteUseCase) List(ctx context.Context) ([]*entity.Note, error) {
	return uc.repo.List(ctx)
}

// Update aplica solo los campos presentes en la petición. Si la actualización
// trae recordatorio, se reprograma una sola vez tras persistir. Devuelve
// (nil, nil) si el id no existe.
func (uc *NoteUseCase) Update(ctx context.Context, id string, in dto.UpdateNoteRequest) (*entity.Note, error) {
	set := map[string]any{"updatedAt": time.Now()}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		set["title"] = *in.Title
	}
	if in.Content != nil {
		set["content"] = *in.Content
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Priority != nil {
		if !entity.ValidNotePriority(*in.Priority) {
			return nil, domain.ErrInvalidInput
		}
		set["priority"] = *in.Priority
	}
	if in.Status != nil {
		if !entity.ValidNoteStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		set["status"] = *in.Status
	}
	if in.Reminder != nil {
		if err := validateReminder(in.Reminder); err != nil {
			return nil, err
		}
		set["reminder"] = in.Reminder
	}
	note, err := uc.repo.UpdateFields(ctx, id, set)
	if err != nil || note == nil {
		return note, err
	}
	if in.Reminder != nil {
		uc.scheduleReminder(ctx, note)
	}
	return note, nil
}

// Delete elimina la nota. Id inexistente devuelve domain.ErrNotFound.
func (uc *NoteUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *NoteUseCase) scheduleReminder(ctx context.Context, note *entity.Note) {
	if note.Reminder == nil {
		return
	}
	if err := uc.scheduler.Schedule(ctx, note); err != nil {
		uc.log.Warn().Err(err).Str("note_id", note.ID.Hex()).Msg("no se pudo programar el recordatorio")
	}
}

func validateReminder(r *entity.Reminder) error {
	if r == nil {
		return nil
	}
	if r.Date.IsZero() {
		return domain.ErrInvalidInput
	}
	if r.WhatsappNumber != "" && !whatsappNumberRe.MatchString(r.WhatsappNumber) {
		return domain.ErrInvalidInput
	}
	return nil
}
