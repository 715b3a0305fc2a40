// Package dashboard fetches the three dashboard payloads in parallel and
// reshapes them into chart-ready series and cards. The join is all-or-nothing:
// one failed call aborts the whole refresh and no partial charts are kept.
package dashboard

import (
	"context"
	"sync"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/listview"
	"github.com/example/martadmin/pkg/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type State string

const (
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateError   State = "error"
)

// Periods accepted by the analytics endpoint.
var Periods = []string{"day", "week", "month", "year"}

const DefaultPeriod = "week"

func ValidPeriod(p string) bool {
	for _, known := range Periods {
		if p == known {
			return true
		}
	}
	return false
}

// View is everything the dashboard screen renders, derived purely from the
// three fetched payloads.
type View struct {
	Period             string                `json:"period"`
	RevenueSeries      []models.RevenuePoint `json:"revenueSeries"`
	PeriodSeries       []models.RevenuePoint `json:"periodSeries"`
	StatusDistribution []StatusCount         `json:"statusDistribution"`
	CategorySlices     []CategorySlice       `json:"categorySlices"`
	SummaryCards       []SummaryCard         `json:"summaryCards"`
	AlertCards         []AlertCard           `json:"alertCards"`
	RecentActivity     []Activity            `json:"recentActivity"`
}

type Aggregator struct {
	client *api.Client
	logger *zap.Logger
	notify listview.Notifier

	mu    sync.Mutex
	state State
	view  *View
}

func NewAggregator(client *api.Client, logger *zap.Logger, notify listview.Notifier) *Aggregator {
	return &Aggregator{
		client: client,
		logger: logger,
		notify: notify,
		state:  StateLoading,
	}
}

// Refresh fetches snapshot, quick stats and period analytics concurrently
// and rebuilds the view once all three have landed. On any failure the state
// is error, the previous view is discarded, and one error notification is
// raised.
func (a *Aggregator) Refresh(ctx context.Context, period string) (*View, error) {
	if !ValidPeriod(period) {
		period = DefaultPeriod
	}

	a.mu.Lock()
	a.state = StateLoading
	a.mu.Unlock()

	var (
		snap *models.DashboardSnapshot
		qs   *models.QuickStats
		pa   *models.PeriodAnalytics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = a.client.GetDashboard(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		qs, err = a.client.GetQuickStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pa, err = a.client.GetPeriodAnalytics(gctx, period, "", "")
		return err
	})

	if err := g.Wait(); err != nil {
		a.mu.Lock()
		a.state = StateError
		a.view = nil
		a.mu.Unlock()
		a.logger.Warn("dashboard refresh failed", zap.String("period", period), zap.Error(err))
		a.notify.Error(api.UserMessage(err, "Failed to load dashboard"))
		return nil, err
	}

	view := BuildView(period, snap, qs, pa)

	a.mu.Lock()
	a.state = StateLoaded
	a.view = view
	a.mu.Unlock()
	return view, nil
}

// BuildView assembles the derived shapes; pure, recomputed on every refresh.
func BuildView(period string, snap *models.DashboardSnapshot, qs *models.QuickStats, pa *models.PeriodAnalytics) *View {
	return &View{
		Period:             period,
		RevenueSeries:      RevenueSeries(snap),
		PeriodSeries:       append([]models.RevenuePoint(nil), pa.Series...),
		StatusDistribution: StatusDistribution(snap),
		CategorySlices:     CategorySlices(snap),
		SummaryCards:       SummaryCards(snap),
		AlertCards:         AlertCards(qs),
		RecentActivity:     RecentActivity(snap),
	}
}

func (a *Aggregator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// View returns the last successfully built view, nil while loading or after
// a failure.
func (a *Aggregator) View() *View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}
