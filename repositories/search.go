//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search_index.go -package=mocks
package repositories

import (
	"chat-hub/domain"
	"context"
	"fmt"

	"github.com/blugelabs/bluge"
)

const (
	fieldContent   = "content"
	fieldRoom      = "room"
	fieldLang      = "lang"
	fieldCreatedAt = "created_at"
	fieldID        = "_id"
)

type ISearchIndex interface {
	Apply(batch SearchBatch) error
	Search(ctx context.Context, roomID, text, lang string, limit int) ([]SearchHit, error)
}

type IndexedMessage struct {
	Message domain.Message
	Lang    string
}

// SearchBatch groups index changes applied atomically.
type SearchBatch struct {
	Upserts  []IndexedMessage
	Removals []string
}

func (b SearchBatch) Len() int {
	return len(b.Upserts) + len(b.Removals)
}

type SearchHit struct {
	MessageID string
	Score     float64
}

// SearchIndex is the full-text index over message content.
// It is a projection of the badger message log and can be rebuilt from it.
type SearchIndex struct {
	writer *bluge.Writer
}

func NewSearchIndex(writer *bluge.Writer) *SearchIndex {
	return &SearchIndex{writer: writer}
}

// Apply writes a batch of upserts and removals in a single index commit.
func (s *SearchIndex) Apply(batch SearchBatch) error {
	if batch.Len() == 0 {
		return nil
	}
	b := bluge.NewBatch()
	for _, u := range batch.Upserts {
		doc := toDocument(u)
		b.Update(doc.ID(), doc)
	}
	for _, id := range batch.Removals {
		b.Delete(bluge.Identifier(id))
	}
	if err := s.writer.Batch(b); err != nil {
		return fmt.Errorf("failed to apply index batch of %d: %w", batch.Len(), err)
	}
	return nil
}

func toDocument(u IndexedMessage) *bluge.Document {
	doc := bluge.NewDocument(u.Message.ID).
		AddField(bluge.NewTextField(fieldContent, u.Message.Content)).
		AddField(bluge.NewKeywordField(fieldRoom, u.Message.RoomID)).
		AddField(bluge.NewDateTimeField(fieldCreatedAt, u.Message.CreatedAt).StoreValue())
	if u.Lang != "" {
		doc.AddField(bluge.NewKeywordField(fieldLang, u.Lang).StoreValue())
	}
	return doc
}

// Search returns the best matching messages of a room, highest score first.
func (s *SearchIndex) Search(ctx context.Context, roomID, text, lang string, limit int) ([]SearchHit, error) {
	reader, err := s.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to open index reader: %w", err)
	}
	defer reader.Close()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(text).SetField(fieldContent)).
		AddMust(bluge.NewTermQuery(roomID).SetField(fieldRoom))
	if lang != "" {
		query.AddMust(bluge.NewTermQuery(lang).SetField(fieldLang))
	}

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	var hits []SearchHit
	match, err := iterator.Next()
	for err == nil && match != nil {
		hit := SearchHit{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == fieldID {
				hit.MessageID = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}
