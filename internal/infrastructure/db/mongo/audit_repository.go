package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

const collectionAuditoria = "log_auditoria"

// AuditRepository stores audit entries in the log_auditoria collection.
// Entries are never updated or deleted.
type AuditRepository struct {
	col *mongo.Collection
}

var _ ports.AuditRepository = (*AuditRepository)(nil)

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAuditoria)}
}

type auditDoc struct {
	ID        string    `bson:"_id"`
	IDMilitar string    `bson:"id_militar"`
	Matricula string    `bson:"matricula,omitempty"`
	Nome      string    `bson:"nome,omitempty"`
	Acao      string    `bson:"acao"`
	DataHora  time.Time `bson:"data_hora"`
	IPOrigem  string    `bson:"ip_origem"`
}

func toAuditDoc(e *domain.LogAuditoria) auditDoc {
	return auditDoc{
		ID:        e.ID,
		IDMilitar: e.IDMilitar,
		Matricula: e.Matricula,
		Nome:      e.Nome,
		Acao:      e.Acao,
		DataHora:  e.DataHora.UTC(),
		IPOrigem:  e.IPOrigem,
	}
}

func (d auditDoc) toDomain() *domain.LogAuditoria {
	return &domain.LogAuditoria{
		ID:        d.ID,
		IDMilitar: d.IDMilitar,
		Matricula: d.Matricula,
		Nome:      d.Nome,
		Acao:      d.Acao,
		DataHora:  d.DataHora.UTC(),
		IPOrigem:  d.IPOrigem,
	}
}

// Insert appends one entry.
func (r *AuditRepository) Insert(ctx context.Context, e *domain.LogAuditoria) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toAuditDoc(e)); err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}

// List returns entries newest first together with the total matching count.
func (r *AuditRepository) List(ctx context.Context, f ports.ListAuditoriaFilter) ([]*domain.LogAuditoria, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.IDMilitar != "" {
		filter["id_militar"] = f.IDMilitar
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count auditoria: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "data_hora", Value: -1}}).
		SetSkip(int64(f.Offset))
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find auditoria: %w", err)
	}
	defer cur.Close(ctx)

	var docs []auditDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode auditoria: %w", err)
	}

	out := make([]*domain.LogAuditoria, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, total, nil
}

// EnsureIndexes creates the indexes used by the listing.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "data_hora", Value: -1}}},
		{Keys: bson.D{{Key: "id_militar", Value: 1}, {Key: "data_hora", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
