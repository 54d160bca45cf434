package models

import (
	"encoding/json"
	"fmt"

	"github.com/iudanet/servermanager/pkg/api"
)

// DataState представляет вариант состояния интерфейса
type DataState string

const (
	DataStateLoading DataState = "LOADING_STATE" // первая загрузка, данных еще нет
	DataStateLoaded  DataState = "LOADED_STATE"  // данные получены и могут быть отрисованы
	DataStateError   DataState = "ERROR_STATE"   // последнее действие завершилось ошибкой
)

// AppState представляет состояние, которое видит слой представления.
// Активен ровно один вариант: Loading, Loaded(AppData) или Error(Err).
// Значения создаются только через Loading, Loaded и Failed.
type AppState struct {
	AppData   *api.Response // непустой только для DataStateLoaded
	Err       error         // непустой только для DataStateError
	DataState DataState
}

// Loading returns the transient state shown before the first collection arrives.
func Loading() AppState {
	return AppState{DataState: DataStateLoading}
}

// Loaded returns a renderable state. A nil payload is a programming error.
func Loaded(data *api.Response) AppState {
	if data == nil {
		panic("models: Loaded requires a non-nil payload")
	}
	return AppState{DataState: DataStateLoaded, AppData: data}
}

// Failed returns the error state for err.
func Failed(err error) AppState {
	if err == nil {
		panic("models: Failed requires a non-nil error")
	}
	return AppState{DataState: DataStateError, Err: err}
}

// Servers returns the rows that should be rendered for this state.
func (s AppState) Servers() []api.Server {
	if s.DataState != DataStateLoaded || s.AppData == nil {
		return nil
	}
	return s.AppData.Data.Servers
}

// Message returns the user-facing message of a loaded state or the error text.
func (s AppState) Message() string {
	switch s.DataState {
	case DataStateLoaded:
		return s.AppData.Message
	case DataStateError:
		return s.Err.Error()
	case DataStateLoading:
		return ""
	default:
		panic(fmt.Sprintf("models: unknown data state %q", s.DataState))
	}
}

// appStateJSON is the wire form pushed to the dashboard.
type appStateJSON struct {
	AppData   *api.Response `json:"appData,omitempty"`
	DataState DataState     `json:"dataState"`
	Error     string        `json:"error,omitempty"`
}

// MarshalJSON encodes the state with the error flattened to its message.
func (s AppState) MarshalJSON() ([]byte, error) {
	out := appStateJSON{DataState: s.DataState, AppData: s.AppData}
	if s.Err != nil {
		out.Error = s.Err.Error()
	}
	return json.Marshal(out)
}
