package services

import (
	"fmt"
	"sync"

	"github.com/NibirNd/Safebite-App/models"
)

// AppView names the screens the UI sequences through.
type AppView string

const (
	ViewIntro      AppView = "INTRO"
	ViewOnboarding AppView = "ONBOARDING"
	ViewDashboard  AppView = "DASHBOARD"
	ViewScanning   AppView = "SCANNING"
	ViewLoading    AppView = "LOADING"
	ViewResult     AppView = "RESULT"
	ViewMyDiet     AppView = "MY_DIET"
	ViewJournal    AppView = "JOURNAL"
	ViewSettings   AppView = "SETTINGS"
)

// transitions lists, per screen, where the UI may navigate next.
// Logout resets to INTRO from anywhere via Reset.
var transitions = map[AppView][]AppView{
	ViewIntro:      {ViewOnboarding, ViewDashboard},
	ViewOnboarding: {ViewLoading, ViewDashboard},
	ViewLoading:    {ViewDashboard, ViewResult},
	ViewDashboard:  {ViewScanning, ViewLoading, ViewResult, ViewMyDiet, ViewJournal, ViewSettings},
	ViewScanning:   {ViewDashboard, ViewLoading},
	ViewResult:     {ViewDashboard},
	ViewMyDiet:     {ViewDashboard},
	ViewJournal:    {ViewDashboard},
	ViewSettings:   {ViewDashboard},
}

// Coordinator is the thin state machine sequencing screens. It owns
// the current view and the last analysis result the result screen
// renders; all profile state lives in the store, never here.
type Coordinator struct {
	mu     sync.Mutex
	view   AppView
	result *models.AnalysisResult
}

func NewCoordinator() *Coordinator {
	return &Coordinator{view: ViewIntro}
}

func (c *Coordinator) View() AppView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Transition moves to the named screen if the current screen allows
// it.
func (c *Coordinator) Transition(to AppView) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, allowed := range transitions[c.view] {
		if allowed == to {
			c.setView(to)
			return nil
		}
	}
	return fmt.Errorf("illegal view transition %s -> %s", c.view, to)
}

// Force sets the view unconditionally. Used when a completed operation
// implies the screen change (login, onboarding done, analysis
// finished) rather than an explicit navigation.
func (c *Coordinator) Force(to AppView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setView(to)
}

// setView moves the view; leaving the result screen drops the pending
// result so it cannot be served stale later. Callers hold the lock.
func (c *Coordinator) setView(to AppView) {
	if c.view == ViewResult && to != ViewResult {
		c.result = nil
	}
	c.view = to
}

// Reset returns to the intro screen and drops any pending result.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = ViewIntro
	c.result = nil
}

func (c *Coordinator) SetResult(r *models.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = r
}

func (c *Coordinator) Result() *models.AnalysisResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}
