package api

import (
	"context"

	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет операции server api, которые использует клиент.
// Любая ошибка возвращается как *OperationError.
type ClientAPI interface {
	// ListServers возвращает полный список серверов в порядке backend
	ListServers(ctx context.Context) (*api.Response, error)

	// Ping проверяет доступность сервера; data.server содержит обновленную запись
	Ping(ctx context.Context, ipAddress string) (*api.Response, error)

	// Filter фильтрует переданный снимок локально
	Filter(ctx context.Context, filter models.Filter, snapshot *api.Response) (*api.Response, error)

	// Save создает сервер; data.server содержит запись с назначенным id
	Save(ctx context.Context, input api.ServerInput) (*api.Response, error)

	// Delete удаляет сервер по id
	Delete(ctx context.Context, serverID int64) (*api.Response, error)
}

var _ ClientAPI = (*Client)(nil)
