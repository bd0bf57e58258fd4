package wizard

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"soundcamps/internal/core/domain"
)

// View is a read-only rendering of a session.
type View struct {
	ID            string               `json:"id"`
	Step          domain.Step          `json:"step"`
	Subscription  bool                 `json:"subscriptionView"`
	Progress      domain.Progress      `json:"progress"`
	Data          *domain.CampaignData `json:"campaign"`
	Estimates     domain.Estimates     `json:"estimates"`
	StepValid     bool                 `json:"stepValid"`
	Submitting    bool                 `json:"submitting"`
	Revision      uint64               `json:"revision"`
	SelectedPlan  string               `json:"selectedPlan,omitempty"`
	PlanPrice     float64              `json:"planPrice,omitempty"`
	AnnualBilling bool                 `json:"annualBilling"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// Session is one campaign-creation flow. It is the single owner of its
// Store and Sequencer; every read-modify-write runs under mu so concurrent
// requests for the same session serialize.
type Session struct {
	id      string
	created time.Time

	mu         sync.Mutex
	store      *Store
	seq        *Sequencer
	submitting bool
	plan       string
	annual     bool
	lastSeen   time.Time

	revision atomic.Uint64
	unsub    func()
}

// NewSession creates a session with default campaign data on the first
// step.
func NewSession(id string, now time.Time) *Session {
	s := &Session{
		id:       id,
		created:  now,
		lastSeen: now,
		store:    NewStore(nil),
		seq:      NewSequencer(),
	}
	s.unsub = s.store.Subscribe(func(*domain.CampaignData) {
		s.revision.Add(1)
	})
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Close detaches the session from its store.
func (s *Session) Close() {
	s.unsub()
}

// Touch records activity for idle eviction.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// IdleSince reports whether the session saw no activity after t.
func (s *Session) IdleSince(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(t)
}

// Data returns the current campaign snapshot.
func (s *Session) Data() *domain.CampaignData {
	return s.store.Read()
}

// View renders the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	data := s.store.Read()
	var price float64
	if p, ok := domain.FindPlan(s.plan); ok {
		price = p.Price(s.annual)
	}
	return View{
		ID:            s.id,
		Step:          s.seq.Current(),
		Subscription:  s.seq.InSubscriptionView(),
		Progress:      s.seq.Progress(),
		Data:          data,
		Estimates:     domain.Estimate(data.Budget),
		StepValid:     domain.IsStepValid(s.seq.Current(), data),
		Submitting:    s.submitting,
		Revision:      s.revision.Load(),
		SelectedPlan:  s.plan,
		PlanPrice:     price,
		AnnualBilling: s.annual,
		CreatedAt:     s.created,
	}
}

// Update applies a free-form patch. Payment fields are managed by
// SavePaymentMethod, ClearPaymentMethod and SetReviewed and are ignored
// here.
func (s *Session) Update(p domain.CampaignPatch) View {
	p.PaymentMethod = domain.Field[*domain.PaymentMethod]{}
	p.ReviewedCampaign = domain.Field[bool]{}
	return s.mutate(func(*domain.CampaignData) (domain.CampaignPatch, error) {
		return p, nil
	})
}

// SelectTrack stores the chosen track; nil clears the selection.
func (s *Session) SelectTrack(td *domain.TrackDetails) View {
	return s.mutate(func(*domain.CampaignData) (domain.CampaignPatch, error) {
		return domain.CampaignPatch{Track: domain.Some(td)}, nil
	})
}

// ToggleSimilarArtist adds or removes a reference artist.
func (s *Session) ToggleSimilarArtist(a domain.SimilarArtist) View {
	return s.mutate(func(d *domain.CampaignData) (domain.CampaignPatch, error) {
		return domain.CampaignPatch{SimilarArtists: domain.Some(domain.ToggleSimilarArtist(d.SimilarArtists, a))}, nil
	})
}

// ToggleGenre adds or removes a genre, capped at three.
func (s *Session) ToggleGenre(g string) View {
	return s.mutate(func(d *domain.CampaignData) (domain.CampaignPatch, error) {
		return domain.CampaignPatch{Genres: domain.Some(domain.ToggleGenre(d.Genres, g))}, nil
	})
}

// ToggleCountry adds or removes one catalog country. Codes are matched
// case-insensitively.
func (s *Session) ToggleCountry(code string) (View, error) {
	norm, ok := domain.NormalizeCountry(code)
	if !ok {
		return View{}, fmt.Errorf("%w: %s", domain.ErrUnknownCountry, code)
	}
	return s.mutate(func(d *domain.CampaignData) (domain.CampaignPatch, error) {
		return domain.CampaignPatch{TargetCountries: domain.Some(domain.ToggleCountry(d.TargetCountries, norm))}, nil
	}), nil
}

// ToggleRegion selects or deselects every country of a region.
func (s *Session) ToggleRegion(name string) (View, error) {
	region, ok := domain.FindRegion(name)
	if !ok {
		return View{}, fmt.Errorf("%w: %s", domain.ErrUnknownRegion, name)
	}
	return s.mutate(func(d *domain.CampaignData) (domain.CampaignPatch, error) {
		return domain.CampaignPatch{TargetCountries: domain.Some(domain.ToggleRegion(d.TargetCountries, region))}, nil
	}), nil
}

// ToggleAllCountries selects the whole catalog or clears it.
func (s *Session) ToggleAllCountries() View {
	return s.mutate(func(d *domain.CampaignData) (domain.CampaignPatch, error) {
		return domain.CampaignPatch{TargetCountries: domain.Some(domain.ToggleAllCountries(d.TargetCountries))}, nil
	})
}

// SavePaymentMethod stores a registered card. Replacing the card withdraws
// the review confirmation.
func (s *Session) SavePaymentMethod(pm domain.PaymentMethod) View {
	return s.mutate(func(d *domain.CampaignData) (domain.CampaignPatch, error) {
		p := domain.CampaignPatch{PaymentMethod: domain.Some(&pm)}
		if d.PaymentMethodID == nil || *d.PaymentMethodID != pm.PaymentMethodID {
			p.ReviewedCampaign = domain.Some(false)
		}
		return p, nil
	})
}

// ClearPaymentMethod forgets the card and the review confirmation.
func (s *Session) ClearPaymentMethod() View {
	return s.mutate(func(*domain.CampaignData) (domain.CampaignPatch, error) {
		return domain.CampaignPatch{
			PaymentMethod:    domain.Some[*domain.PaymentMethod](nil),
			ReviewedCampaign: domain.Some(false),
		}, nil
	})
}

// SetReviewed toggles the review confirmation. Confirming requires a saved
// payment method.
func (s *Session) SetReviewed(reviewed bool) (View, error) {
	var view View
	err := s.mutateErr(func(d *domain.CampaignData) (domain.CampaignPatch, error) {
		if reviewed && !d.HasPaymentMethod() {
			return domain.CampaignPatch{}, domain.ErrPaymentMethodRequired
		}
		return domain.CampaignPatch{ReviewedCampaign: domain.Some(reviewed)}, nil
	}, &view)
	return view, err
}

// Advance validates the active step and moves forward.
func (s *Session) Advance() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := domain.CheckStep(s.seq.Current(), s.store.Read()); err != nil {
		return View{}, err
	}
	s.seq.Next()
	return s.viewLocked(), nil
}

// Back moves to the previous step.
func (s *Session) Back() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.Previous()
	return s.viewLocked()
}

// JumpTo sets the active step directly. Only steps already reached
// through Advance are allowed.
func (s *Session) JumpTo(step domain.Step) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.seq.SetStep(step); err != nil {
		return View{}, err
	}
	return s.viewLocked(), nil
}

// ShowPlans switches to the subscription view once the budget step was
// reached.
func (s *Session) ShowPlans() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.seq.EnterSubscriptionView(); err != nil {
		return View{}, err
	}
	return s.viewLocked(), nil
}

// SelectPlan records the chosen subscription plan and billing period.
func (s *Session) SelectPlan(planID string, annual bool) (View, error) {
	if _, ok := domain.FindPlan(planID); !ok {
		return View{}, fmt.Errorf("%w: %s", domain.ErrUnknownPlan, planID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan, s.annual = planID, annual
	return s.viewLocked(), nil
}

// BeginSubmit marks a submission in flight and returns the snapshot and
// step it runs against. A second call before EndSubmit fails with
// ErrSubmissionInProgress.
func (s *Session) BeginSubmit() (*domain.CampaignData, domain.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return nil, "", domain.ErrSubmissionInProgress
	}
	s.submitting = true
	return s.store.Read(), s.seq.Current(), nil
}

// EndSubmit clears the in-flight flag.
func (s *Session) EndSubmit() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}

// Submitting reports whether a submission is in flight.
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

func (s *Session) mutate(fn func(*domain.CampaignData) (domain.CampaignPatch, error)) View {
	var view View
	_ = s.mutateErr(fn, &view)
	return view
}

func (s *Session) mutateErr(fn func(*domain.CampaignData) (domain.CampaignPatch, error), view *View) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := fn(s.store.Read())
	if err != nil {
		return err
	}
	s.store.Update(p)
	*view = s.viewLocked()
	return nil
}
