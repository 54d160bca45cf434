package state

import "github.com/iudanet/servermanager/pkg/api"

//go:generate moq -out notifier_mock.go . Notifier

// Notifier receives presentation side effects after an action completes.
// Calls are made outside the projector lock, so implementations may read
// projector state.
type Notifier interface {
	// DismissDialog closes the server creation dialog
	DismissDialog()

	// ResetForm resets the creation form, preselecting defaultStatus
	ResetForm(defaultStatus api.Status)

	// ClearProgress hides the in-progress indicator
	ClearProgress()
}

// NopNotifier ignores every notification.
type NopNotifier struct{}

func (NopNotifier) DismissDialog()         {}
func (NopNotifier) ResetForm(_ api.Status) {}
func (NopNotifier) ClearProgress()         {}
