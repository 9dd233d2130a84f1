package names

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/namesvc/pkg/logger"
	"github.com/dmitrymomot/namesvc/pkg/sanitizer"
	"github.com/dmitrymomot/namesvc/pkg/validator"
)

// Recorder receives store events, typically *metrics.NamesCollector.
type Recorder interface {
	NamePicked()
	PickMissed()
	NameAdded(total int)
	NameRejected()
}

type nopRecorder struct{}

func (nopRecorder) NamePicked()   {}
func (nopRecorder) PickMissed()   {}
func (nopRecorder) NameAdded(int) {}
func (nopRecorder) NameRejected() {}

var normalizeName = sanitizer.Compose(sanitizer.Trim)

// Service applies input rules on top of a Store.
type Service struct {
	store    *Store
	log      *slog.Logger
	recorder Recorder
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithRecorder(r Recorder) ServiceOption {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

func NewService(store *Store, opts ...ServiceOption) *Service {
	if store == nil {
		panic("names: nil store")
	}
	s := &Service{
		store:    store,
		log:      logger.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("names"))
	return s
}

// RandomName returns a name chosen uniformly from the store.
func (s *Service) RandomName(ctx context.Context) (string, error) {
	name, err := s.store.PickRandom()
	if err != nil {
		s.recorder.PickMissed()
		s.log.DebugContext(ctx, "random name requested from empty store", logger.Event("pick"))
		return "", err
	}
	s.recorder.NamePicked()
	return name, nil
}

// AddName trims raw and appends it. Blank input leaves the store unchanged
// and returns an error matching ErrInvalidInput.
func (s *Service) AddName(ctx context.Context, raw string) (string, error) {
	name := normalizeName(raw)
	if err := validator.Apply(validator.RequiredString("name", name)); err != nil {
		s.recorder.NameRejected()
		s.log.DebugContext(ctx, "name rejected", logger.Event("add"), logger.Error(err))
		return "", errors.Join(ErrInvalidInput, err)
	}

	total := s.store.Add(name)
	s.recorder.NameAdded(total)
	s.log.InfoContext(ctx, "name added",
		logger.Event("add"),
		slog.String("name", name),
		logger.Count(total),
	)
	return name, nil
}

// Count returns the number of stored names.
func (s *Service) Count() int {
	return s.store.Len()
}
