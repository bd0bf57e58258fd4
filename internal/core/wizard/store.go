// Package wizard holds the stateful pieces of a campaign-creation session:
// the campaign data store, the step sequencer and the session that ties
// them together.
package wizard

import (
	"slices"
	"sync"

	"soundcamps/internal/core/domain"
)

// Store owns the CampaignData snapshot of one session. Snapshots are
// immutable: Update replaces the pointer when something changed and leaves
// it untouched otherwise.
type Store struct {
	mu        sync.RWMutex
	snap      *domain.CampaignData
	observers map[int]func(*domain.CampaignData)
	nextObs   int
}

// NewStore returns a store seeded with initial, or with the wizard defaults
// when initial is nil.
func NewStore(initial *domain.CampaignData) *Store {
	if initial == nil {
		initial = domain.NewCampaignData()
	}
	return &Store{snap: initial, observers: make(map[int]func(*domain.CampaignData))}
}

// Read returns the current snapshot. Callers must not modify it.
func (s *Store) Read() *domain.CampaignData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Update shallow-merges p into the snapshot. Keys whose value equals the
// current one are skipped; when no key changes the snapshot and observers
// are left alone. It reports whether a new snapshot was published.
func (s *Store) Update(p domain.CampaignPatch) bool {
	s.mu.Lock()
	next, changed := merge(s.snap, p)
	if !changed {
		s.mu.Unlock()
		return false
	}
	s.snap = next
	observers := make([]func(*domain.CampaignData), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(next)
	}
	return true
}

// Subscribe registers fn for every new snapshot. The returned func removes
// the observer.
func (s *Store) Subscribe(fn func(*domain.CampaignData)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func merge(cur *domain.CampaignData, p domain.CampaignPatch) (*domain.CampaignData, bool) {
	var next *domain.CampaignData
	edit := func() *domain.CampaignData {
		if next == nil {
			next = cur.Clone()
		}
		return next
	}

	if changedPtr(p.Track, cur.TrackDetails) {
		n := edit()
		n.TrackDetails, n.SelectedTrackID = nil, nil
		if p.Track.Value != nil {
			td := *p.Track.Value
			n.TrackDetails, n.SelectedTrackID = &td, &td.ID
		}
	}
	if changedSlice(p.SimilarArtists, cur.SimilarArtists) {
		edit().SimilarArtists = orEmpty(slices.Clone(p.SimilarArtists.Value))
	}
	if changedValue(p.StrategyType, cur.StrategyType) {
		edit().StrategyType = p.StrategyType.Value
	}
	if changedSlice(p.Genres, cur.Genres) {
		edit().Genres = orEmpty(slices.Clone(p.Genres.Value))
	}
	if changedSlice(p.TargetCountries, cur.TargetCountries) {
		edit().TargetCountries = orEmpty(slices.Clone(p.TargetCountries.Value))
	}
	if changedValue(p.AdStyle, cur.AdStyle) {
		edit().AdStyle = p.AdStyle.Value
	}
	if changedValue(p.AdTitle, cur.AdTitle) {
		edit().AdTitle = p.AdTitle.Value
	}
	if changedValue(p.AdDescription, cur.AdDescription) {
		edit().AdDescription = p.AdDescription.Value
	}
	if changedPtr(p.SelectedVideo, cur.SelectedVideo) {
		edit().SelectedVideo = p.SelectedVideo.Value
	}
	if changedSlice(p.SelectedTopAds, cur.SelectedTopAds) {
		edit().SelectedTopAds = orEmpty(slices.Clone(p.SelectedTopAds.Value))
	}
	if changedValue(p.Budget, cur.Budget) {
		edit().Budget = p.Budget.Value
	}
	if changedPtr(p.PaymentMethod, paymentMethodOf(cur)) {
		n := edit()
		n.PaymentMethodID, n.CustomerID, n.PaymentCard = nil, nil, nil
		if pm := p.PaymentMethod.Value; pm != nil {
			pmID, custID, card := pm.PaymentMethodID, pm.CustomerID, pm.Card
			n.PaymentMethodID, n.CustomerID, n.PaymentCard = &pmID, &custID, &card
		}
	}
	if changedValue(p.ReviewedCampaign, cur.ReviewedCampaign) {
		edit().ReviewedCampaign = p.ReviewedCampaign.Value
	}
	if changedValue(p.Objective, cur.Objective) {
		edit().Objective = p.Objective.Value
	}
	return next, next != nil
}

func paymentMethodOf(d *domain.CampaignData) *domain.PaymentMethod {
	if d.PaymentMethodID == nil {
		return nil
	}
	pm := &domain.PaymentMethod{PaymentMethodID: *d.PaymentMethodID}
	if d.CustomerID != nil {
		pm.CustomerID = *d.CustomerID
	}
	if d.PaymentCard != nil {
		pm.Card = *d.PaymentCard
	}
	return pm
}

func changedValue[T comparable](f domain.Field[T], cur T) bool {
	return f.Set && f.Value != cur
}

func changedSlice[T comparable](f domain.Field[[]T], cur []T) bool {
	return f.Set && !slices.Equal(f.Value, cur)
}

func changedPtr[T comparable](f domain.Field[*T], cur *T) bool {
	if !f.Set {
		return false
	}
	if f.Value == nil || cur == nil {
		return f.Value != cur
	}
	return *f.Value != *cur
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
