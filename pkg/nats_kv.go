package pkg

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const backupBucket = "order_backups"

// NATSKeyValue keeps best-effort copies of order records in a JetStream
// key-value bucket. It is a backup, not a source of truth: callers treat
// write failures as non-fatal.
type NATSKeyValue struct {
	conn *nats.Conn
	kv   jetstream.KeyValue
}

func NewNATSKeyValue(ctx context.Context, url string) (*NATSKeyValue, error) {
	conn, err := nats.Connect(url, nats.Name("scantoserve-backup"))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("cannot create JetStream context: %w", err)
	}

	kv, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      backupBucket,
		Description: "Local backup copies of submitted orders",
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("cannot create key-value bucket %s: %w", backupBucket, err)
	}

	return &NATSKeyValue{conn: conn, kv: kv}, nil
}

func (n *NATSKeyValue) Put(ctx context.Context, key string, value []byte) error {
	if _, err := n.kv.Put(ctx, key, value); err != nil {
		return fmt.Errorf("cannot store backup %s: %w", key, err)
	}
	return nil
}

func (n *NATSKeyValue) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := n.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("cannot read backup %s: %w", key, err)
	}
	return entry.Value(), nil
}

func (n *NATSKeyValue) Close() error {
	n.conn.Close()
	return nil
}
