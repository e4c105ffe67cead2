package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"eventline/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// CreateEvent runs the pre-persist pipeline and commits: schema validation,
// slug derivation, date normalization, time normalization, in that order.
// Any failure aborts the whole write. Create-time slug collisions are left to
// the storage-level unique index, which the repository surfaces as
// ErrDuplicateSlug.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	canonicalizeEvent(event)
	if err := domain.Validate(event); err != nil {
		return err
	}

	event.Slug = slugify(event.Title)
	if event.Slug == "" {
		return fmt.Errorf("%w: title %q yields an empty slug", domain.ErrValidation, event.Title)
	}

	var err error
	if event.Date, err = normalizeDate(event.Date); err != nil {
		return err
	}
	if event.Time, err = normalizeTime(event.Time); err != nil {
		return err
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	return s.eventRepo.Create(ctx, event)
}

// UpdateEvent applies a partial write. Each pipeline step runs only when its
// source field is part of the update; untouched fields keep their stored,
// already-canonical values. A slug that would collide with another document
// gets a -<epoch-millis> suffix; the suffixed value is not re-checked.
func (s *eventService) UpdateEvent(ctx context.Context, id string, update *domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	applyUpdate(event, update)
	canonicalizeEvent(event)
	if err := domain.Validate(event); err != nil {
		return nil, err
	}

	if update.Title != nil {
		slug := slugify(event.Title)
		if slug == "" {
			return nil, fmt.Errorf("%w: title %q yields an empty slug", domain.ErrValidation, event.Title)
		}
		taken, err := s.eventRepo.SlugTaken(ctx, slug, id)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if taken {
			slug = slug + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
		}
		event.Slug = slug
	}
	if update.Date != nil {
		if event.Date, err = normalizeDate(event.Date); err != nil {
			return nil, err
		}
	}
	if update.Time != nil {
		if event.Time, err = normalizeTime(event.Time); err != nil {
			return nil, err
		}
	}

	event.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.GetBySlug(ctx, slug)
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	events, total, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

// canonicalizeEvent trims the text fields and lowercases the mode, mirroring
// what the schema promises about stored documents. Idempotent.
func canonicalizeEvent(e *domain.Event) {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Overview = strings.TrimSpace(e.Overview)
	e.Image = strings.TrimSpace(e.Image)
	e.Venue = strings.TrimSpace(e.Venue)
	e.Location = strings.TrimSpace(e.Location)
	e.Mode = strings.ToLower(strings.TrimSpace(e.Mode))
	e.Audience = strings.TrimSpace(e.Audience)
	e.Organizer = strings.TrimSpace(e.Organizer)
}

func applyUpdate(e *domain.Event, u *domain.EventUpdate) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Overview != nil {
		e.Overview = *u.Overview
	}
	if u.Image != nil {
		e.Image = *u.Image
	}
	if u.Venue != nil {
		e.Venue = *u.Venue
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	if u.Date != nil {
		e.Date = *u.Date
	}
	if u.Time != nil {
		e.Time = *u.Time
	}
	if u.Mode != nil {
		e.Mode = *u.Mode
	}
	if u.Audience != nil {
		e.Audience = *u.Audience
	}
	if u.Agenda != nil {
		e.Agenda = *u.Agenda
	}
	if u.Organizer != nil {
		e.Organizer = *u.Organizer
	}
	if u.Tags != nil {
		e.Tags = *u.Tags
	}
}
