package source

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"spell-miner/core/record"
	"spell-miner/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageSource reads a dump mirrored into object storage. Record IDs are
// object keys with the configured prefix stripped, matching the IDs a
// DirSource over the same dump would produce.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSource returns a source over one bucket prefix.
func NewStorageSource(client storage.Client, bucket, prefix string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, prefix: prefix}
}

// List enumerates every JSON object under the prefix in sorted order.
func (s *StorageSource) List(ctx context.Context) ([]string, error) {
	var ids []string
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	})
	for obj := range objects {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to enumerate bucket %q: %w", s.bucket, obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		ids = append(ids, strings.TrimPrefix(obj.Key, s.prefix))
	}
	sort.Strings(ids)
	return ids, nil
}

// Fetch downloads and decodes one record document.
func (s *StorageSource) Fetch(ctx context.Context, id string) (record.Object, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, s.prefix+id, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch record %q: %w", id, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read record %q: %w", id, err)
	}
	rec, err := record.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode record %q: %w", id, err)
	}
	return rec, nil
}
