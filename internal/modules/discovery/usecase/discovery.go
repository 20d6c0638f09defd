package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	affiliatedto "giftdrift/internal/modules/affiliate/dto"
	affiliatein "giftdrift/internal/modules/affiliate/port/in"
	"giftdrift/internal/modules/discovery/domain"
	discoverydto "giftdrift/internal/modules/discovery/dto"
	discoveryin "giftdrift/internal/modules/discovery/port/in"
	discoveryout "giftdrift/internal/modules/discovery/port/out"
	"giftdrift/internal/modules/discovery/service"
	gesture "giftdrift/internal/modules/gesture/domain"
	"giftdrift/internal/platform/clock"
	apperrors "giftdrift/internal/platform/errors"
)

const seenLookupLimit = 200

// Config carries the runtime tuning the host supplies.
type Config struct {
	PageSize  int
	MaxSwipes int
	LowWater  int
	UserAgent string
	Viewport  string
}

// Interactor owns the swipe-state and mediates every exchange with the
// platform. All state mutation happens under the mutex; network calls for
// replenishment run outside it, tagged with the session id in flight so a
// response for a superseded session is discarded.
type Interactor struct {
	mu  sync.Mutex
	cfg Config
	clk clock.Clock
	svc *service.DeckService

	gateway   discoveryout.SessionGateway
	products  discoveryout.ProductSource
	analytics discoveryout.AnalyticsSink
	haptics   discoveryout.Haptics
	opener    discoveryout.LinkOpener
	journal   discoveryout.SwipeJournal
	notes     discoveryout.SessionNoteStore
	affiliate affiliatein.Usecase

	observer    discoveryin.Observer
	state       domain.SwipeState
	lastSwipeAt time.Time
	notice      string
}

func NewInteractor(
	cfg Config,
	clk clock.Clock,
	gateway discoveryout.SessionGateway,
	products discoveryout.ProductSource,
	analytics discoveryout.AnalyticsSink,
	haptics discoveryout.Haptics,
	opener discoveryout.LinkOpener,
	journal discoveryout.SwipeJournal,
	notes discoveryout.SessionNoteStore,
	affiliate affiliatein.Usecase,
) *Interactor {
	return &Interactor{
		cfg:       cfg,
		clk:       clk,
		svc:       service.NewDeckService(cfg.MaxSwipes, cfg.LowWater),
		gateway:   gateway,
		products:  products,
		analytics: analytics,
		haptics:   haptics,
		opener:    opener,
		journal:   journal,
		notes:     notes,
		affiliate: affiliate,
		state:     domain.SwipeState{Phase: domain.PhaseUninitialized},
	}
}

// SetObserver registers the host callbacks. Must be called before
// Initialize when the host wants completion or recommendation events.
func (i *Interactor) SetObserver(obs discoveryin.Observer) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.observer = obs
}

// Initialize creates a remote session and loads the first product batch. On
// any failure the deck stays uninitialized with no partial state.
func (i *Interactor) Initialize(ctx context.Context, input discoverydto.StartInput) (discoverydto.StateOutput, error) {
	sessionType := domain.SessionType(input.SessionType)
	if input.SessionType == "" {
		sessionType = domain.SessionDiscovery
	}
	if err := sessionType.Validate(); err != nil {
		return discoverydto.StateOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	i.mu.Lock()
	startedAt := i.clk.Now()
	i.state = domain.SwipeState{Phase: domain.PhaseLoading}
	i.notice = ""
	i.mu.Unlock()

	sessionID, err := i.gateway.CreateSession(ctx, discoveryout.CreateSessionInput{
		Type:            sessionType,
		CategoryFocus:   input.CategoryFocus,
		TargetRecipient: input.TargetRecipient,
		Context: discoveryout.ClientContext{
			UserAgent: i.cfg.UserAgent,
			Viewport:  i.cfg.Viewport,
			StartedAt: startedAt,
		},
	})
	if err != nil {
		i.mu.Lock()
		i.state = domain.SwipeState{Phase: domain.PhaseUninitialized}
		i.mu.Unlock()
		return discoverydto.StateOutput{}, fmt.Errorf("create session: %w", err)
	}

	i.mu.Lock()
	i.state.Session = domain.Session{
		ID:              sessionID,
		Type:            sessionType,
		CategoryFocus:   input.CategoryFocus,
		TargetRecipient: input.TargetRecipient,
		StartedAt:       startedAt,
	}
	i.lastSwipeAt = time.Time{}
	i.mu.Unlock()

	if _, err := i.fetchPage(ctx, sessionID); err != nil {
		i.mu.Lock()
		i.state = domain.SwipeState{Phase: domain.PhaseUninitialized}
		i.mu.Unlock()
		return discoverydto.StateOutput{}, fmt.Errorf("load first batch: %w", err)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if len(i.state.Deck) == 0 {
		i.state.Phase = domain.PhaseExhausted
	} else {
		i.state.Phase = domain.PhaseActive
	}
	return i.snapshotLocked(), nil
}

// HandleSwipe is the self-loop of the active phase: record remotely
// (fire-and-forget), journal locally, advance counters and index, then run
// the replenishment and completion checks. Local progression is never
// blocked by a remote recording failure.
func (i *Interactor) HandleSwipe(ctx context.Context, dir gesture.Direction, g gesture.Gesture) (discoverydto.SwipeOutput, error) {
	if !dir.Valid() {
		return discoverydto.SwipeOutput{}, fmt.Errorf("%w: direction %q", apperrors.ErrInvalidInput, dir)
	}

	i.mu.Lock()
	if i.state.Session.ID == "" || i.state.Phase != domain.PhaseActive {
		out := discoverydto.SwipeOutput{State: i.snapshotLocked()}
		i.mu.Unlock()
		return out, nil
	}
	card, ok := i.state.ActiveCard()
	if !ok {
		out := discoverydto.SwipeOutput{State: i.snapshotLocked()}
		i.mu.Unlock()
		return out, nil
	}

	now := i.clk.Now()
	sinceLast := 0
	if !i.lastSwipeAt.IsZero() {
		sinceLast = int(now.Sub(i.lastSwipeAt).Milliseconds())
	}
	elapsed := int(now.Sub(i.state.Session.StartedAt).Milliseconds())
	i.lastSwipeAt = now
	sessionID := i.state.Session.ID
	i.mu.Unlock()

	remoteOK := true
	if err := i.gateway.RecordSwipe(ctx, discoveryout.SwipeRecord{
		SessionID:        sessionID,
		ProductID:        card.ID,
		Direction:        dir,
		Gesture:          g,
		Position:         card.Position,
		SinceLastSwipeMS: sinceLast,
		ElapsedMS:        elapsed,
	}); err != nil {
		remoteOK = false
		i.setNotice("swipe not recorded: " + err.Error())
	}
	if i.journal != nil {
		if err := i.journal.Append(ctx, discoveryout.JournalEntry{
			SessionID:  sessionID,
			ProductID:  card.ID,
			Direction:  dir,
			Velocity:   g.Velocity,
			Distance:   g.Distance,
			DurationMS: g.DurationMS,
			Position:   card.Position,
			RemoteOK:   remoteOK,
			At:         now,
		}); err != nil {
			i.setNotice("journal write failed: " + err.Error())
		}
	}

	i.mu.Lock()
	// The lock was dropped for the remote record, so a concurrent swipe,
	// completion, or reset may have moved the deck on. The swipe targets the
	// card captured above; if that card is no longer active the swipe is stale
	// and must be dropped, never applied to whatever took its place.
	if i.state.Phase != domain.PhaseActive || i.state.Session.ID != sessionID {
		out := discoverydto.SwipeOutput{State: i.snapshotLocked()}
		i.mu.Unlock()
		return out, nil
	}
	if current, ok := i.state.ActiveCard(); !ok || current.ID != card.ID {
		out := discoverydto.SwipeOutput{State: i.snapshotLocked()}
		i.mu.Unlock()
		return out, nil
	}
	outcome := i.svc.ApplySwipe(&i.state, dir)
	var summary *discoverydto.SessionSummary
	if outcome.Completed {
		summary = i.completeLocked(now)
	}
	needFetch := outcome.NeedsFetch && !outcome.Completed
	if needFetch {
		i.state.Fetching = true
	}
	obs := i.observer
	i.mu.Unlock()

	if i.haptics != nil {
		i.haptics.Pulse(gesture.CoarsePattern(outcome.Positive))
	}
	if outcome.RecommendationPulse && obs != nil {
		obs.RecommendationsReady()
	}
	if summary != nil && obs != nil {
		obs.SessionCompleted(*summary)
	}
	if needFetch {
		if _, err := i.fetchPage(ctx, sessionID); err != nil {
			i.setNotice("could not load more products: " + err.Error())
		}
	}

	return discoverydto.SwipeOutput{
		State:                i.Snapshot(),
		Completed:            summary != nil,
		RecommendationsReady: outcome.RecommendationPulse,
		Summary:              summary,
	}, nil
}

// FetchMore requests the next bounded batch. A failure leaves the deck and
// the has-more flag untouched so a later low-water check can retry.
func (i *Interactor) FetchMore(ctx context.Context) (discoverydto.StateOutput, error) {
	i.mu.Lock()
	if i.state.Session.ID == "" {
		i.mu.Unlock()
		return discoverydto.StateOutput{}, apperrors.ErrNoSession
	}
	if i.state.Fetching {
		out := i.snapshotLocked()
		i.mu.Unlock()
		return out, nil
	}
	if !i.state.HasMore {
		out := i.snapshotLocked()
		i.mu.Unlock()
		return out, apperrors.ErrDeckExhausted
	}
	i.state.Fetching = true
	sessionID := i.state.Session.ID
	i.mu.Unlock()

	if _, err := i.fetchPage(ctx, sessionID); err != nil {
		return i.Snapshot(), fmt.Errorf("fetch more products: %w", err)
	}
	return i.Snapshot(), nil
}

// ProductClick runs the affiliate passthrough for the active card and opens
// the resulting URL. Affiliate and analytics failures degrade to opening the
// raw URL; nothing here may stall the session.
func (i *Interactor) ProductClick(ctx context.Context) (discoverydto.ClickOutput, error) {
	i.mu.Lock()
	card, ok := i.state.ActiveCard()
	i.mu.Unlock()
	if !ok {
		return discoverydto.ClickOutput{}, nil
	}
	product := card.Product

	url := product.URL
	tracked := false
	if i.affiliate != nil {
		res, err := i.affiliate.ProcessClick(ctx, affiliatedto.ClickInput{
			ProductID: product.ID,
			Category:  product.Category,
			Price:     product.Price,
			Currency:  product.Currency,
			URL:       product.URL,
			Source:    "swipe_interface",
		})
		if err != nil {
			i.setNotice("affiliate link unavailable: " + err.Error())
		} else if res.URL != "" {
			url = res.URL
			tracked = res.Tracked
		}
	}

	if i.analytics != nil {
		if err := i.analytics.Track(ctx, "product_clicked", map[string]any{
			"product_id": product.ID,
			"category":   product.Category,
			"price":      product.Price,
			"tracked":    tracked,
		}); err != nil {
			i.setNotice("analytics unavailable: " + err.Error())
		}
	}

	opened := true
	if err := i.opener.Open(ctx, url); err != nil {
		opened = false
		i.setNotice("could not open product page: " + err.Error())
	}
	return discoverydto.ClickOutput{URL: url, Tracked: tracked, Opened: opened}, nil
}

// Reset discards all state and re-runs initialization. Requests already in
// flight keep their old session tag and are dropped on arrival.
func (i *Interactor) Reset(ctx context.Context, input discoverydto.StartInput) (discoverydto.StateOutput, error) {
	i.mu.Lock()
	i.state = domain.SwipeState{Phase: domain.PhaseUninitialized}
	i.lastSwipeAt = time.Time{}
	i.notice = ""
	i.mu.Unlock()
	return i.Initialize(ctx, input)
}

func (i *Interactor) Snapshot() discoverydto.StateOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.snapshotLocked()
}

// Browse lists products outside any session, for the catalog tab.
func (i *Interactor) Browse(ctx context.Context, input discoverydto.BrowseInput) ([]discoverydto.CardOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = i.cfg.PageSize
	}
	products, err := i.products.FetchPage(ctx, discoveryout.ProductQuery{Limit: limit, Category: input.Category})
	if err != nil {
		return nil, fmt.Errorf("browse products: %w", err)
	}
	out := make([]discoverydto.CardOutput, 0, len(products))
	for pos, p := range products {
		out = append(out, discoverydto.CardOutput{Product: p, Position: pos})
	}
	return out, nil
}

// ─── private ─────────────────────────────────────────────────────────────────

// fetchPage performs one network fetch tagged with sessionID and appends the
// batch, discarding the response if the session changed while it was in
// flight.
func (i *Interactor) fetchPage(ctx context.Context, sessionID string) (int, error) {
	var seen []string
	if i.journal != nil {
		ids, err := i.journal.SeenProductIDs(ctx, seenLookupLimit)
		if err == nil {
			seen = ids
		}
	}

	i.mu.Lock()
	category := i.state.Session.CategoryFocus
	i.mu.Unlock()

	products, err := i.products.FetchPage(ctx, discoveryout.ProductQuery{
		Limit:       i.cfg.PageSize,
		SessionID:   sessionID,
		Category:    category,
		ExcludeSeen: seen,
	})

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.state.Session.ID != sessionID {
		return 0, apperrors.ErrSessionStale
	}
	i.state.Fetching = false
	if err != nil {
		return 0, err
	}
	i.svc.Append(&i.state, products, i.cfg.PageSize)
	return len(products), nil
}

// completeLocked finalizes the session and writes the local summary note.
// Completion is inferred and reported to the host, never requested from the
// platform.
func (i *Interactor) completeLocked(now time.Time) *discoverydto.SessionSummary {
	i.state.Phase = domain.PhaseCompleting
	i.state.Session.Completed = true
	i.state.Session.CompletedAt = now
	i.state.Session.Duration = now.Sub(i.state.Session.StartedAt)

	notePath := ""
	if i.notes != nil {
		path, err := i.notes.Save(context.Background(), i.state.Session)
		if err != nil {
			i.notice = "session note not written: " + err.Error()
		} else {
			notePath = path
		}
	}
	i.state.Phase = domain.PhaseCompleted

	return &discoverydto.SessionSummary{
		SessionID:       i.state.Session.ID,
		SessionType:     string(i.state.Session.Type),
		CategoryFocus:   i.state.Session.CategoryFocus,
		TargetRecipient: i.state.Session.TargetRecipient,
		SwipeCount:      i.state.Session.SwipeCount,
		LikeCount:       i.state.Session.LikeCount,
		DislikeCount:    i.state.Session.DislikeCount,
		StartedAt:       i.state.Session.StartedAt,
		CompletedAt:     i.state.Session.CompletedAt,
		Duration:        i.state.Session.Duration,
		NotePath:        notePath,
	}
}

func (i *Interactor) snapshotLocked() discoverydto.StateOutput {
	cards := make([]discoverydto.CardOutput, 0, 3)
	if card, ok := i.state.ActiveCard(); ok {
		cards = append(cards, discoverydto.CardOutput{Product: card.Product, Position: card.Position, Active: true})
	}
	for _, card := range i.state.Upcoming(2) {
		cards = append(cards, discoverydto.CardOutput{Product: card.Product, Position: card.Position})
	}
	return discoverydto.StateOutput{
		Phase:        string(i.state.Phase),
		SessionID:    i.state.Session.ID,
		SessionType:  string(i.state.Session.Type),
		Cards:        cards,
		SwipeCount:   i.state.Session.SwipeCount,
		LikeCount:    i.state.Session.LikeCount,
		DislikeCount: i.state.Session.DislikeCount,
		Remaining:    i.state.Remaining(),
		MaxSwipes:    i.cfg.MaxSwipes,
		ShowProgress: i.state.ShowProgress,
		HasMore:      i.state.HasMore,
		Fetching:     i.state.Fetching,
		Notice:       i.notice,
	}
}

func (i *Interactor) setNotice(msg string) {
	i.mu.Lock()
	i.notice = msg
	i.mu.Unlock()
}
