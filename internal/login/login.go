// Package login simulates the console's sign-in screen. Submitting only
// toggles a loading flag for a fixed delay; no credentials are checked.
package login

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Data is what the sign-in screen collects.
type Data struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// State is the screen state shown to the user.
type State struct {
	Email        string `json:"email"`
	RememberMe   bool   `json:"rememberMe"`
	Loading      bool   `json:"loading"`
	ShowPassword bool   `json:"showPassword"`
}

// Form holds the sign-in screen of one session. The completion timer runs on
// its own goroutine, so every field is guarded by mu.
type Form struct {
	mu           sync.Mutex
	data         Data
	loading      bool
	showPassword bool
	delay        time.Duration
	logger       *zap.Logger
	timer        *time.Timer
	onDone       func()
}

// NewForm creates a sign-in screen whose submissions settle after delay.
func NewForm(delay time.Duration, logger *zap.Logger) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Form{delay: delay, logger: logger}
}

// Submit starts the simulated round-trip. It returns false without doing
// anything when a previous submission is still loading.
func (f *Form) Submit(data Data) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loading {
		return false
	}
	f.data = data
	f.loading = true
	f.timer = time.AfterFunc(f.delay, f.complete)
	return true
}

func (f *Form) complete() {
	f.mu.Lock()
	data := f.data
	f.loading = false
	f.timer = nil
	onDone := f.onDone
	f.mu.Unlock()

	f.logger.Info("login submitted",
		zap.String("email", data.Email),
		zap.Bool("remember_me", data.RememberMe))
	if onDone != nil {
		onDone()
	}
}

// TogglePassword flips password visibility and returns the new value.
func (f *Form) TogglePassword() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showPassword = !f.showPassword
	return f.showPassword
}

// State returns the current screen state. The password is never exposed.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Email:        f.data.Email,
		RememberMe:   f.data.RememberMe,
		Loading:      f.loading,
		ShowPassword: f.showPassword,
	}
}

// OnDone registers a callback run after each completed submission.
func (f *Form) OnDone(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onDone = fn
}

// Stop cancels a pending completion, leaving the form loading.
func (f *Form) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
	}
}
