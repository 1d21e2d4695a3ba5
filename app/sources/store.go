package sources

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/RobTisdell/robtisdell.git.io/app/metrics"
	"github.com/RobTisdell/robtisdell.git.io/app/models"
	"github.com/RobTisdell/robtisdell.git.io/app/schedule"
)

// Store is the in-memory cache of the three site feeds. It is populated
// by Refresh (cron-driven and on-demand when the TTL lapses) and read by
// every page and API handler. Per-source errors are kept alongside the
// data so one broken feed degrades only its own widgets.
type Store struct {
	fetcher *Fetcher

	eventsSrc       string
	staffSrc        string
	titleholdersSrc string
	ttl             time.Duration

	// reqGen hands out a generation per refresh attempt; appliedGen
	// records the newest one whose results were stored. A slow refresh
	// that resolves after a newer one is discarded instead of clobbering
	// fresher data.
	reqGen     atomic.Uint64
	appliedGen uint64

	mu              sync.RWMutex
	events          []*models.Event
	eventsErr       error
	staff           []models.StaffMember
	staffErr        error
	titleholders    []models.Titleholder
	titleholdersErr error
	fetchedAt       time.Time
}

// NewStore builds a store reading from the three configured sources.
func NewStore(eventsSrc, staffSrc, titleholdersSrc string, ttl time.Duration) *Store {
	return &Store{
		fetcher:         NewFetcher(),
		eventsSrc:       eventsSrc,
		staffSrc:        staffSrc,
		titleholdersSrc: titleholdersSrc,
		ttl:             ttl,
	}
}

// Refresh fetches all three sources and swaps the cache in one step.
// It returns the first source error encountered, but always stores
// whatever succeeded.
func (s *Store) Refresh(ctx context.Context) error {
	gen := s.reqGen.Add(1)

	var rawEvents []models.Event
	eventsErr := s.fetcher.FetchJSON(ctx, s.eventsSrc, &rawEvents)
	events, skipped := normalizeEvents(rawEvents)
	if eventsErr != nil {
		metrics.SourceFetches.WithLabelValues("events", "error").Inc()
	} else {
		metrics.SourceFetches.WithLabelValues("events", "ok").Inc()
	}
	if skipped > 0 {
		metrics.EventsSkipped.Add(float64(skipped))
		log.Printf("events source: skipped %d malformed record(s)", skipped)
	}

	var staff []models.StaffMember
	staffErr := s.fetcher.FetchJSON(ctx, s.staffSrc, &staff)
	if staffErr != nil {
		metrics.SourceFetches.WithLabelValues("staff", "error").Inc()
	} else {
		metrics.SourceFetches.WithLabelValues("staff", "ok").Inc()
	}

	var titleholders []models.Titleholder
	titleholdersErr := s.fetcher.FetchJSON(ctx, s.titleholdersSrc, &titleholders)
	if titleholdersErr != nil {
		metrics.SourceFetches.WithLabelValues("titleholders", "error").Inc()
	} else {
		metrics.SourceFetches.WithLabelValues("titleholders", "ok").Inc()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.appliedGen {
		// A newer refresh already landed while this one was in flight.
		log.Printf("discarding stale refresh (generation %d < %d)", gen, s.appliedGen)
		return nil
	}
	s.appliedGen = gen
	s.events, s.eventsErr = events, eventsErr
	s.staff, s.staffErr = staff, staffErr
	s.titleholders, s.titleholdersErr = titleholders, titleholdersErr
	s.fetchedAt = time.Now()

	return errors.Join(eventsErr, staffErr, titleholdersErr)
}

// EnsureFresh refreshes the cache when the TTL has lapsed. Handlers call
// it before reading; the error is informational since stale data, when
// present, is still served.
func (s *Store) EnsureFresh(ctx context.Context) error {
	s.mu.RLock()
	fresh := !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) < s.ttl
	s.mu.RUnlock()
	if fresh {
		return nil
	}
	return s.Refresh(ctx)
}

// Events returns the cached normalized events and the last fetch error
// for the events source.
func (s *Store) Events() ([]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events, s.eventsErr
}

// EventByID looks up one event by its canonical string ID.
func (s *Store) EventByID(id string) (*models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ev := range s.events {
		if ev.ID.String() == id {
			return ev, true
		}
	}
	return nil, false
}

// Staff returns the cached staff feed and its last fetch error.
func (s *Store) Staff() ([]models.StaffMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.staff, s.staffErr
}

// Titleholders returns the cached titleholders feed and its last fetch error.
func (s *Store) Titleholders() ([]models.Titleholder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.titleholders, s.titleholdersErr
}

// normalizeEvents canonicalizes raw feed records: IDs become strings
// (records without one get a generated ID so modal links still work), and
// each event's daily schedule is resolved once up front. Records whose
// schedule cannot be resolved are quarantined: one bad record must never
// blank the whole calendar.
func normalizeEvents(raw []models.Event) ([]*models.Event, int) {
	events := make([]*models.Event, 0, len(raw))
	skipped := 0

	for i := range raw {
		ev := raw[i]
		if ev.ID == "" {
			ev.ID = models.FlexID(uuid.NewString())
		}
		sched, err := schedule.BuildDailySchedule(&ev)
		if err != nil {
			skipped++
			log.Printf("skipping event %q: %v", ev.Name, err)
			continue
		}
		ev.Schedule = sched
		events = append(events, &ev)
	}
	return events, skipped
}
