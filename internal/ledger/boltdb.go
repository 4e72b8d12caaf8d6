package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"tracker/internal/core"
)

var (
	ledgerBucketName = []byte("ledger")
	transactionsKey  = []byte("transactions")
)

const slotVersion = 1

// slotDocument wraps the transaction array with a schema version. Legacy
// slots hold the bare array; Load accepts both shapes.
type slotDocument struct {
	Version      int                `json:"version"`
	Transactions []core.Transaction `json:"transactions"`
}

// BoltSlot persists the whole collection under one fixed key in a bbolt
// bucket. The value is rewritten wholesale on every save.
type BoltSlot struct {
	db *bolt.DB
}

func NewBoltSlot(db *bolt.DB) (*BoltSlot, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(ledgerBucketName)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create ledger bucket: %w", err)
	}
	return &BoltSlot{db: db}, nil
}

func (s *BoltSlot) Load(_ context.Context) ([]core.Transaction, bool, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(ledgerBucketName).Get(transactionsKey); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("read ledger slot: %w", err)
	}
	if raw == nil {
		return nil, false, nil
	}
	txs, err := decodeSlot(raw)
	if err != nil {
		return nil, true, err
	}
	return txs, true, nil
}

func (s *BoltSlot) Save(_ context.Context, txs []core.Transaction) error {
	doc := slotDocument{Version: slotVersion, Transactions: txs}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode ledger slot: %w", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(ledgerBucketName).Put(transactionsKey, raw)
	})
	if err != nil {
		return fmt.Errorf("write ledger slot: %w", err)
	}
	return nil
}

// decodeSlot reads either the versioned document or the legacy bare array.
func decodeSlot(raw []byte) ([]core.Transaction, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var txs []core.Transaction
		if err := json.Unmarshal(trimmed, &txs); err != nil {
			return nil, fmt.Errorf("decode legacy ledger slot: %w", err)
		}
		return txs, nil
	}
	var doc slotDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decode ledger slot: %w", err)
	}
	return doc.Transactions, nil
}
