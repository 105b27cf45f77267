// Package store persists the coach document to a diskv-backed slot on disk.
// The whole document lives under a single key and is rewritten on every
// mutation, last writer wins.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/coach/pkg/coach"
)

const (
	// dataKey is the one slot the document lives under.
	dataKey = "coachdata"

	// corruptKey is where an unparsable document is moved aside so a fresh
	// start never silently destroys evidence.
	corruptKey = "coachdata.corrupt"
)

// Persistence is the contract between the application and durable storage.
type Persistence interface {
	Load(ctx context.Context) (*coach.Document, error)
	Save(d *coach.Document) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load reads the persisted document. A missing slot yields a fresh default
// document. A present one gets the day rollover applied (OldDay recompute
// plus the daily sweep) and is migrated to the current schema. A corrupt
// blob is moved aside and replaced with defaults; startup never fails on
// corruption.
func (p *persistence) Load(ctx context.Context) (*coach.Document, error) {
	now := time.Now()

	if !p.d.Has(dataKey) {
		return coach.NewDocument(now), nil
	}

	val, err := p.d.Read(dataKey)
	if err != nil {
		return nil, fmt.Errorf("store: read document: %w", err)
	}

	doc := &coach.Document{}
	if err := json.Unmarshal(val, doc); err != nil {
		fmt.Fprintf(os.Stderr, "store: document unreadable, starting fresh (original kept at %s): %v\n", corruptKey, err)
		if werr := p.d.Write(corruptKey, val); werr != nil {
			fmt.Fprintf(os.Stderr, "store: keep corrupt document: %v\n", werr)
		}
		return coach.NewDocument(now), nil
	}

	doc.RefreshDay(now)
	Migrate(doc)
	return doc, nil
}

// Save serializes the full document into the slot, unconditionally
// overwriting prior content.
func (p *persistence) Save(d *coach.Document) error {
	if d.Schema == 0 {
		d.Schema = coach.CurrentSchema
	}
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("store: marshal document: %w", err)
	}
	if err := p.d.Write(dataKey, data); err != nil {
		return fmt.Errorf("store: write document: %w", err)
	}
	return nil
}
