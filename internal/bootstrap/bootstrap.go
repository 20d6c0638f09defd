package bootstrap

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	affiliateinadapter "giftdrift/internal/modules/affiliate/adapter/in"
	affiliateoutadapter "giftdrift/internal/modules/affiliate/adapter/out"
	affiliatein "giftdrift/internal/modules/affiliate/port/in"
	affiliateservice "giftdrift/internal/modules/affiliate/service"
	affiliateusecase "giftdrift/internal/modules/affiliate/usecase"
	discoveryinadapter "giftdrift/internal/modules/discovery/adapter/in"
	discoveryoutadapter "giftdrift/internal/modules/discovery/adapter/out"
	discoverydto "giftdrift/internal/modules/discovery/dto"
	discoveryusecase "giftdrift/internal/modules/discovery/usecase"
	gesture "giftdrift/internal/modules/gesture/domain"
	profileinadapter "giftdrift/internal/modules/profile/adapter/in"
	profileoutadapter "giftdrift/internal/modules/profile/adapter/out"
	profilein "giftdrift/internal/modules/profile/port/in"
	profileusecase "giftdrift/internal/modules/profile/usecase"
	"giftdrift/internal/platform/clock"
	"giftdrift/internal/platform/config"
	uiapp "giftdrift/internal/ui/app"
)

const userAgent = "giftdrift-tui/1.0"

// App holds the wired module graph. Close releases the journal's database
// handle; everything else is stateless or file-per-call.
type App struct {
	Config config.Config

	Discovery *discoveryusecase.Interactor
	Affiliate affiliatein.Usecase
	Profile   profilein.Usecase

	DiscoveryCLI discoveryinadapter.CLIHandler
	AffiliateCLI affiliateinadapter.CLIHandler
	ProfileCLI   profileinadapter.CLIHandler

	Journal *discoveryoutadapter.SQLiteSwipeJournal
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	journal, err := discoveryoutadapter.NewSQLiteSwipeJournal(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new swipe journal: %w", err)
	}

	tag := os.Getenv("GIFTDRIFT_ASSOCIATE_TAG")
	if tag == "" {
		tag = "giftdrift-20"
	}
	affiliateSvc := affiliateservice.NewAffiliateService(
		affiliateoutadapter.NewFileManifestStore(cfg.DataDir),
		affiliateoutadapter.NewGRPCHost(),
		affiliateoutadapter.NewBuiltinProvider(tag),
	)
	affiliateUC := affiliateusecase.NewInteractor(affiliateSvc)

	gateway := discoveryoutadapter.NewHTTPGateway(cfg.APIBaseURL, cfg.APIKey)
	discoveryUC := discoveryusecase.NewInteractor(
		discoveryusecase.Config{
			PageSize:  cfg.Swipe.PageSize,
			MaxSwipes: cfg.Swipe.MaxSwipes,
			LowWater:  cfg.Swipe.PrefetchLowWater,
			UserAgent: userAgent,
			Viewport:  "terminal",
		},
		clk,
		gateway,
		gateway,
		gateway,
		discoveryoutadapter.NewTerminalHaptics(os.Stderr),
		discoveryoutadapter.NewOSLinkOpener(),
		journal,
		discoveryoutadapter.NewNoteSessionStore(cfg.DataDir),
		affiliateUC,
	)

	profileUC := profileusecase.NewInteractor(profileoutadapter.NewFileTokenStore(cfg.DataDir), clk)

	return &App{
		Config:       cfg,
		Discovery:    discoveryUC,
		Affiliate:    affiliateUC,
		Profile:      profileUC,
		DiscoveryCLI: discoveryinadapter.NewCLIHandler(discoveryUC),
		AffiliateCLI: affiliateinadapter.NewCLIHandler(affiliateUC),
		ProfileCLI:   profileinadapter.NewCLIHandler(profileUC),
		Journal:      journal,
	}, nil
}

func (a *App) Close() error {
	return a.Journal.Close()
}

// RunTUI starts the full-screen program. Mouse motion reporting is required
// for drag gestures on the deck.
func RunTUI(app *App, sessionType, category, recipient string) error {
	bridge := uiapp.NewEventBridge()
	app.Discovery.SetObserver(bridge)

	if sessionType == "" {
		sessionType = app.Config.SessionType
	}
	model := uiapp.NewModel(
		app.Discovery,
		app.Affiliate,
		app.Profile,
		bridge,
		discoverydto.StartInput{
			SessionType:     sessionType,
			CategoryFocus:   category,
			TargetRecipient: recipient,
		},
		gesture.Thresholds{
			Distance: app.Config.Swipe.DistanceThreshold,
			Velocity: app.Config.Swipe.VelocityThreshold,
		},
	)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	return err
}
