package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	es "github.com/elastic/go-elasticsearch/v9"

	"tracker-grpc/internal/models"
)

type Client struct {
	es    *es.Client
	index string
	log   *slog.Logger
}

func NewClient(addresses []string, index string, log *slog.Logger) (*Client, error) {
	cfg := es.Config{
		Addresses: addresses,
	}
	c, err := es.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	client := &Client{
		es:    c,
		index: index,
		log:   log,
	}

	if err := client.ensureIndex(); err != nil {
		return nil, err
	}

	return client, nil
}

// Search matches the label field, restricted to one kind and to records the
// viewer may see. The visibility clause mirrors the subscription filter:
// public records plus the viewer's own.
func (c *Client) Search(ctx context.Context, kind models.Kind, viewerId int64, query string) ([]*models.Record, error) {
	body := fmt.Sprintf(`
{
  "query": {
    "bool": {
      "must": [
        { "match": { "label": %q } }
      ],
      "filter": [
        { "term": { "kind": %q } },
        {
          "bool": {
            "should": [
              { "term": { "private": false } },
              { "term": { "owner_id": %d } }
            ]
          }
        }
      ]
    }
  },
  "sort": [
    { "created_at": { "order": "desc" } }
  ]
}`, query, kind, viewerId)

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(strings.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("es search error: %s", res.String())
	}

	var raw struct {
		Hits struct {
			Hits []struct {
				Source struct {
					Id        int64     `json:"id"`
					Kind      string    `json:"kind"`
					Label     string    `json:"label"`
					Link      string    `json:"link"`
					OwnerId   int64     `json:"owner_id"`
					OwnerName string    `json:"owner_name"`
					CreatedAt time.Time `json:"created_at"`
					Checked   bool      `json:"checked"`
					Private   bool      `json:"private"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return nil, err
	}

	records := make([]*models.Record, 0, len(raw.Hits.Hits))
	for _, h := range raw.Hits.Hits {
		records = append(records, &models.Record{
			Id:        h.Source.Id,
			Kind:      models.Kind(h.Source.Kind),
			Label:     h.Source.Label,
			Link:      h.Source.Link,
			OwnerId:   h.Source.OwnerId,
			OwnerName: h.Source.OwnerName,
			CreatedAt: h.Source.CreatedAt,
			Checked:   h.Source.Checked,
			Private:   h.Source.Private,
		})
	}

	return records, nil
}

func (c *Client) IndexRecord(ctx context.Context, rec *models.Record) error {
	body := fmt.Sprintf(`
{
  "id": %d,
  "kind": %q,
  "label": %q,
  "link": %q,
  "owner_id": %d,
  "owner_name": %q,
  "created_at": %q,
  "checked": %t,
  "private": %t
}`, rec.Id, rec.Kind, rec.Label, rec.Link, rec.OwnerId, rec.OwnerName,
		rec.CreatedAt.Format(time.RFC3339), rec.Checked, rec.Private)

	res, err := c.es.Index(
		c.index,
		strings.NewReader(body),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithDocumentID(fmt.Sprint(rec.Id)),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("es index error: %s", res.String())
	}

	return nil
}

func (c *Client) DeleteRecord(ctx context.Context, id int64) error {
	res, err := c.es.Delete(
		c.index,
		fmt.Sprint(id),
		c.es.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("es delete error: %s", res.String())
	}
	return nil
}

// Reindex backfills the whole index from the record store. Run at startup
// so search survives index loss.
func (c *Client) Reindex(ctx context.Context, records []*models.Record) error {
	for _, rec := range records {
		if err := c.IndexRecord(ctx, rec); err != nil {
			return err
		}
	}
	c.log.Info("elasticsearch reindex complete", "count", len(records))
	return nil
}

func (c *Client) ensureIndex() error {
	res, err := c.es.Indices.Exists([]string{c.index})
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		c.log.Info("elasticsearch index exists", "index", c.index)
		return nil
	}

	if res.StatusCode != 404 {
		return fmt.Errorf("unexpected status checking index: %s", res.String())
	}

	c.log.Info("creating elasticsearch index", "index", c.index)

	mapping := `
{
  "mappings": {
    "properties": {
      "id": { "type": "long" },
      "kind": { "type": "keyword" },
      "label": { "type": "text" },
      "link": { "type": "keyword" },
      "owner_id": { "type": "long" },
      "owner_name": { "type": "keyword" },
      "created_at": { "type": "date" },
      "checked": { "type": "boolean" },
      "private": { "type": "boolean" }
    }
  }
}`

	createRes, err := c.es.Indices.Create(
		c.index,
		c.es.Indices.Create.WithBody(strings.NewReader(mapping)),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("create index error: %s", createRes.String())
	}

	c.log.Info("elasticsearch index created", "index", c.index)
	return nil
}
