package view

import (
	"github.com/frahmantamala/manager-dashboard/internal/activity"
	"github.com/frahmantamala/manager-dashboard/internal/core/search"
	"github.com/frahmantamala/manager-dashboard/internal/dashboard"
	"github.com/frahmantamala/manager-dashboard/internal/seed"
)

type DashboardView struct {
	feed    *activity.Feed
	board   *dashboard.Board
	query   string
	viewAll bool
	modals  *ModalController
}

type DashboardState struct {
	Cards   []dashboard.Card `json:"cards"`
	Query   string           `json:"query"`
	ViewAll bool             `json:"view_all"`
	Modals  map[Modal]bool   `json:"modals"`
}

func newDashboardView() *DashboardView {
	return &DashboardView{
		feed:   activity.NewFeed(seed.Activities()),
		board:  dashboard.NewBoard(seed.Dashboard()),
		modals: NewModalController(ModalBills, ModalTransactions, ModalActiveWorkers),
	}
}

func (v *DashboardView) Route() Route { return RouteDashboard }

func (v *DashboardView) Close() error { return nil }

func (v *DashboardView) State() DashboardState {
	return DashboardState{
		Cards:   v.board.Cards(),
		Query:   v.query,
		ViewAll: v.viewAll,
		Modals:  v.modals.Snapshot(),
	}
}

// Activities updates whichever of the search text and the view-all toggle is
// given, then returns the feed as currently filtered.
func (v *DashboardView) Activities(query *string, viewAll *bool) search.Page[activity.Activity] {
	if query != nil {
		v.query = *query
	}
	if viewAll != nil {
		v.viewAll = *viewAll
	}
	return v.feed.Search(v.query, v.viewAll)
}

func (v *DashboardView) Modals() *ModalController { return v.modals }

func (v *DashboardView) Bills() []dashboard.Bill { return v.board.Bills() }

type TransactionsContent struct {
	Transactions []dashboard.Transaction      `json:"transactions"`
	Summary      dashboard.TransactionSummary `json:"summary"`
}

func (v *DashboardView) Transactions() TransactionsContent {
	return TransactionsContent{
		Transactions: v.board.Transactions(),
		Summary:      v.board.TransactionSummary(),
	}
}

func (v *DashboardView) ActiveWorkers() []dashboard.ActiveWorker { return v.board.ActiveWorkers() }
