package database

import (
	"context"
	"errors"

	"github.com/japb1998/atelier/internal/config"
	"github.com/japb1998/atelier/internal/model"
	"github.com/japb1998/atelier/pkg/awssess"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrPersistence     = errors.New("client document could not be read or written")
	ErrClientNotFound  = errors.New("client not found")
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// Snapshot is the stored state of the client list. NextClientId is the high
// water mark of stable id mode and stays 0 when clients are renumbered.
type Snapshot struct {
	Clients      []model.ClientItem `json:"clients"`
	NextClientId int                `json:"nextClientId,omitempty"`
}

// Document is where the whole client list lives. Load on a document that was
// never written returns an empty list.
type Document interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}

// NewDocument picks the backend named by cfg.StoreBackend.
func NewDocument(cfg config.Config) Document {
	if cfg.StoreBackend == config.BackendDynamo {
		return NewDynamoDocument(awssess.MustGetSession(), cfg.ClientTable, cfg.DocumentKey)
	}
	return NewFileDocument(cfg.DataFile)
}

// NewClientRepoFromConfig is the repository both binaries run against.
func NewClientRepoFromConfig(cfg config.Config, opts ...RepoOption) *ClientRepository {
	opts = append([]RepoOption{WithStableIds(cfg.StableIds)}, opts...)
	return NewClientRepo(NewDocument(cfg), opts...)
}

var tracer trace.Tracer

func getTracer() trace.Tracer {
	if tracer != nil {
		return tracer
	}

	tracer = otel.Tracer("github.com/japb1998/atelier/internal/database")
	return tracer
}
